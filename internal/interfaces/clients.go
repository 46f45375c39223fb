// Package interfaces defines service contracts for tradekit
package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tradekit/tradekit/internal/models"
)

// TokenSource yields the current bearer token, or "" when anonymous.
// The token is read fresh on every call, so a logout concurrent with an
// in-flight request does not retroactively invalidate that request.
type TokenSource func() string

// BrokerageClient provides access to the trading backend API
type BrokerageClient interface {
	// Login exchanges credentials for a bearer token
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account and returns the backend message
	Register(ctx context.Context, name, email, password string) (string, error)

	// Logout notifies the backend that the current token is retired.
	// The response body is ignored.
	Logout(ctx context.Context) error

	// ListUsers retrieves the backend user listing (id + wallet fields)
	ListUsers(ctx context.Context) ([]models.UserRecord, error)

	// AddFunds deposits cash and returns the authoritative balance
	AddFunds(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw removes cash and returns the backend confirmation message
	Withdraw(ctx context.Context, amount decimal.Decimal) (string, error)

	// Portfolio retrieves the full holdings list
	Portfolio(ctx context.Context) ([]models.Holding, error)

	// Watchlist retrieves the authoritative watchlist symbol set
	Watchlist(ctx context.Context) ([]string, error)

	// WatchlistAdd adds a symbol and returns the server's resulting set
	WatchlistAdd(ctx context.Context, symbol string) ([]string, error)

	// WatchlistRemove removes a symbol and returns the server's resulting set
	WatchlistRemove(ctx context.Context, symbol string) ([]string, error)

	// Buy submits a buy order and returns the confirmation message
	Buy(ctx context.Context, order models.OrderIntent) (string, error)

	// Sell submits a sell order and returns the confirmation message
	Sell(ctx context.Context, order models.OrderIntent) (string, error)

	// Quote retrieves a live quote for one symbol
	Quote(ctx context.Context, symbol string) (*models.Quote, error)

	// Search looks up instruments matching a query
	Search(ctx context.Context, query string) ([]models.SearchResult, error)

	// Popular retrieves the curated popular-instruments list
	Popular(ctx context.Context) ([]models.PopularStock, error)

	// Orders retrieves the order history
	Orders(ctx context.Context) ([]models.OrderRecord, error)

	// DeleteOrder removes an order by id and returns the backend message
	DeleteOrder(ctx context.Context, id string) (string, error)
}

// QuoteGetter is the subset of BrokerageClient the price feed needs.
type QuoteGetter interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}
