// Package wallet tracks the cash balance for the signed-in user.
package wallet

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
)

// Compile-time interface check
var _ interfaces.WalletStore = (*Store)(nil)

// Store implements WalletStore. The balance always reflects the
// backend's authoritative value after a mutating call completes; every
// mutation is server-confirmed. Responses that lose the race against a
// later mutation are discarded via a monotonic sequence number.
type Store struct {
	client  interfaces.BrokerageClient
	session interfaces.SessionManager
	logger  *common.Logger

	mu      sync.RWMutex
	balance decimal.Decimal
	seq     atomic.Uint64
}

// NewStore creates a new wallet store with a zero balance.
func NewStore(client interfaces.BrokerageClient, session interfaces.SessionManager, logger *common.Logger) *Store {
	return &Store{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// Load reconciles the balance against the backend user listing: it
// fetches all users and extracts the wallet of the entry matching the
// decoded token subject. When the identity cannot be located, the
// previous balance is kept.
func (s *Store) Load(ctx context.Context) error {
	seq := s.seq.Add(1)

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return err
	}

	identity := s.session.Identity()
	if identity == nil {
		s.logger.Debug().Msg("Wallet load with no identity, balance kept")
		return nil
	}

	for _, u := range users {
		if u.ID == identity.ID {
			s.apply(seq, u.Wallet, "load")
			return nil
		}
	}

	s.logger.Debug().Str("user", identity.ID).Msg("Identity not in user listing, balance kept")
	return nil
}

// Add deposits funds. On success the balance is replaced with the
// server-returned value; on failure it is left untouched and the error
// propagates to the caller for display.
func (s *Store) Add(ctx context.Context, amount decimal.Decimal) error {
	seq := s.seq.Add(1)

	balance, err := s.client.AddFunds(ctx, amount)
	if err != nil {
		return err
	}

	s.apply(seq, balance, "add")
	return nil
}

// Withdraw removes funds. Preconditions (amount > 0, amount <= balance)
// are the caller's responsibility. On success the balance is
// server-confirmed by re-reading the user listing; only when that
// confirming read fails does the store fall back to the local
// decrement, which can drift from server truth until the next Load.
func (s *Store) Withdraw(ctx context.Context, amount decimal.Decimal) error {
	seq := s.seq.Add(1)
	before := s.Balance()

	if _, err := s.client.Withdraw(ctx, amount); err != nil {
		return err
	}

	if confirmed, ok := s.fetchConfirmed(ctx); ok {
		s.apply(seq, confirmed, "withdraw")
		return nil
	}

	s.logger.Warn().Msg("Withdraw confirmation read failed, approximating locally")
	s.apply(seq, before.Sub(amount), "withdraw-local")
	return nil
}

// Balance returns the current balance.
func (s *Store) Balance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// fetchConfirmed re-reads the backend's balance for the current identity.
func (s *Store) fetchConfirmed(ctx context.Context) (decimal.Decimal, bool) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return decimal.Decimal{}, false
	}

	identity := s.session.Identity()
	if identity == nil {
		return decimal.Decimal{}, false
	}

	for _, u := range users {
		if u.ID == identity.ID {
			return u.Wallet, true
		}
	}
	return decimal.Decimal{}, false
}

// apply commits a balance if seq is still the latest issued mutation.
func (s *Store) apply(seq uint64, balance decimal.Decimal, op string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		s.logger.Debug().Str("op", op).Uint64("seq", seq).Msg("Stale wallet response discarded")
		return
	}

	s.balance = balance
	s.logger.Debug().Str("op", op).Str("balance", balance.String()).Msg("Wallet updated")
}
