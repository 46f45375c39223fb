package main

import (
	"fmt"
	"os"

	"github.com/tradekit/tradekit/internal/app"
	"github.com/tradekit/tradekit/internal/models"
)

// loadApp builds the client stack from TRADEKIT_CONFIG (optional).
func loadApp() (*app.App, error) {
	return app.NewApp(os.Getenv("TRADEKIT_CONFIG"))
}

// requireAuth refuses a protected verb when no session is held.
func requireAuth(a *app.App) bool {
	if a.Session.Status() != models.StatusAuthenticated {
		fmt.Fprintln(os.Stderr, "Not logged in. Run 'tradekit login' first.")
		return false
	}
	return true
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
