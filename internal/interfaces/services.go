package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tradekit/tradekit/internal/models"
)

// SessionManager owns the bearer token and derived identity.
type SessionManager interface {
	// Init loads the persisted token and decodes identity claims. It
	// always leaves the session Authenticated or Anonymous, never Loading.
	Init()

	// Login persists an already-issued token and decodes its claims.
	Login(token string) error

	// LoginWithCredentials exchanges credentials for a token, then logs in.
	LoginWithCredentials(ctx context.Context, email, password string) error

	// Register creates a backend account and returns the backend message.
	Register(ctx context.Context, name, email, password string) (string, error)

	// Logout best-effort notifies the backend, then unconditionally
	// clears local state. Network failures are swallowed.
	Logout(ctx context.Context)

	Status() models.SessionStatus
	Identity() *models.Identity
	Token() string
}

// WalletStore tracks the cash balance for the signed-in user.
type WalletStore interface {
	// Load reconciles the balance against the backend user listing.
	Load(ctx context.Context) error

	// Add deposits funds; on success the balance is replaced with the
	// server-returned value.
	Add(ctx context.Context, amount decimal.Decimal) error

	// Withdraw removes funds; preconditions (amount > 0, amount <=
	// balance) are checked by the caller before invocation.
	Withdraw(ctx context.Context, amount decimal.Decimal) error

	Balance() decimal.Decimal
}

// PortfolioStore tracks holdings, replaced wholesale on every load.
type PortfolioStore interface {
	Load(ctx context.Context) error
	Holdings() []models.Holding
	HeldQuantity(symbol string) int64
}

// WatchlistStore tracks the watched symbol set, always replaced from
// the server's response, never appended locally.
type WatchlistStore interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, symbol string) error
	Remove(ctx context.Context, symbol string) error
	Symbols() []string
}

// SymbolSource yields the symbol set a price-feed subscription polls.
// It is re-evaluated at the start of every cycle, so watchlist
// membership changes take effect on the next cycle.
type SymbolSource func() []string

// PriceFeed publishes complete per-cycle price snapshots to subscribers.
type PriceFeed interface {
	Subscribe(ctx context.Context, source SymbolSource) Subscription
}

// Subscription is one consumer's handle on the price feed. Closing it
// stops only this subscriber's polling.
type Subscription interface {
	Snapshots() <-chan models.Snapshot
	Close()
}
