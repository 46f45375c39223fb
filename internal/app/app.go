// Package app assembles the tradekit client stack.
package app

import (
	"context"
	"fmt"

	"github.com/tradekit/tradekit/internal/auth"
	"github.com/tradekit/tradekit/internal/clients/brokerage"
	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/services/orders"
	"github.com/tradekit/tradekit/internal/services/portfolio"
	"github.com/tradekit/tradekit/internal/services/pricefeed"
	"github.com/tradekit/tradekit/internal/services/wallet"
	"github.com/tradekit/tradekit/internal/services/watchlist"
	"github.com/tradekit/tradekit/internal/storage"
)

// App owns the session and all trading state. It is the single
// controller for that state: wallet balance, holdings, and the
// watchlist each have exactly one computation path, and consumers get
// read-only projections through the stores.
type App struct {
	Config    *common.Config
	Logger    *common.Logger
	Client    interfaces.BrokerageClient
	Session   interfaces.SessionManager
	Wallet    interfaces.WalletStore
	Portfolio interfaces.PortfolioStore
	Watchlist interfaces.WatchlistStore
	PriceFeed interfaces.PriceFeed
	Orders    *orders.Submitter
	History   *orders.History
}

// NewApp builds the full stack from configuration. The session is
// initialized from persisted storage: the returned app is already
// Authenticated or Anonymous, never Loading.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	tokenStore, err := storage.NewFileTokenStore(logger, config.Session.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	return newApp(config, logger, tokenStore), nil
}

// newApp wires the stack from already-built leaves. Split out so tests
// can inject a token store and a backend URL.
func newApp(config *common.Config, logger *common.Logger, tokenStore interfaces.TokenStore) *App {
	// The client reads its bearer token from the token store on every
	// request rather than from the session, so an in-flight call is not
	// retroactively stripped of credentials by a concurrent logout.
	client := brokerage.NewClient(
		brokerage.WithBaseURL(config.Backend.BaseURL),
		brokerage.WithTimeout(config.Backend.GetTimeout()),
		brokerage.WithRateLimit(config.Backend.RateLimit),
		brokerage.WithLogger(logger),
		brokerage.WithTokenSource(func() string {
			token, err := tokenStore.ReadToken()
			if err != nil {
				logger.Warn().Err(err).Msg("Token read failed, sending unauthenticated")
				return ""
			}
			return token
		}),
	)

	session := auth.NewManager(client, tokenStore, logger)
	session.Init()

	walletStore := wallet.NewStore(client, session, logger)
	portfolioStore := portfolio.NewStore(client, logger)
	watchlistStore := watchlist.NewStore(client, logger)
	feed := pricefeed.NewPoller(client, config.PriceFeed.GetInterval(), logger)

	a := &App{
		Config:    config,
		Logger:    logger,
		Client:    client,
		Session:   session,
		Wallet:    walletStore,
		Portfolio: portfolioStore,
		Watchlist: watchlistStore,
		PriceFeed: feed,
		History:   orders.NewHistory(client, logger),
	}

	a.Orders = orders.NewSubmitter(client, portfolioStore.HeldQuantity, a.refreshAfterFill, logger)
	return a
}

// refreshAfterFill reloads holdings and the wallet after a confirmed
// order, strictly sequenced behind the submission's success response.
func (a *App) refreshAfterFill(ctx context.Context) {
	if err := a.Portfolio.Load(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Portfolio reload after fill failed")
	}
	if err := a.Wallet.Load(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Wallet reload after fill failed")
	}
}

// LoadAll primes the wallet, portfolio, and watchlist stores. Each
// store keeps its previous value on failure; the first error is
// returned after all loads were attempted.
func (a *App) LoadAll(ctx context.Context) error {
	var firstErr error
	for _, load := range []func(context.Context) error{
		a.Wallet.Load,
		a.Portfolio.Load,
		a.Watchlist.Load,
	} {
		if err := load(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
