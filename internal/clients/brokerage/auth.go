package brokerage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tradekit/tradekit/internal/models"
)

// Login exchanges credentials for a bearer token. The call itself is
// unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return resp.Token, nil
}

// Register creates a new account and returns the backend message.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	var resp messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// Logout notifies the backend that the current token is retired. The
// response body is ignored; callers decide how to handle failures.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// ListUsers retrieves the backend user listing. Only the id and wallet
// fields are decoded; the wallet balance for the signed-in user is
// reconciled from this listing at session start.
func (c *Client) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var resp struct {
		Users []models.UserRecord `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/all-users", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Users, nil
}
