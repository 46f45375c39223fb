package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show session, wallet, holdings and watchlist" }
func (*statusCmd) Usage() string {
	return `status

  Primes every store from the backend and prints a one-screen summary.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	if err := a.LoadAll(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	identity := a.Session.Identity()
	fmt.Printf("Signed in as %s (%s)\n", identity.DisplayName, identity.ID)
	fmt.Printf("Balance:   %s\n", a.Wallet.Balance().StringFixed(2))
	fmt.Printf("Holdings:  %d position(s)\n", len(a.Portfolio.Holdings()))

	symbols := a.Watchlist.Symbols()
	if len(symbols) == 0 {
		fmt.Println("Watchlist: empty")
	} else {
		fmt.Printf("Watchlist: %s\n", strings.Join(symbols, ", "))
	}
	return subcommands.ExitSuccess
}
