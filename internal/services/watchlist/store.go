// Package watchlist tracks the watched symbol set.
package watchlist

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
)

// Compile-time interface check
var _ interfaces.WatchlistStore = (*Store)(nil)

// Store implements WatchlistStore. Every successful mutation replaces
// the local set with the server-returned set rather than appending
// locally, so the client never shows a symbol the server rejected and
// never diverges from server-side dedup or ordering. Out-of-order
// responses are discarded via a monotonic sequence number.
type Store struct {
	client interfaces.BrokerageClient
	logger *common.Logger

	mu      sync.RWMutex
	symbols []string
	seq     atomic.Uint64
}

// NewStore creates a new watchlist store.
func NewStore(client interfaces.BrokerageClient, logger *common.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Load fetches the authoritative symbol set.
func (s *Store) Load(ctx context.Context) error {
	seq := s.seq.Add(1)

	symbols, err := s.client.Watchlist(ctx)
	if err != nil {
		return err
	}

	s.apply(seq, symbols, "load")
	return nil
}

// Add submits a symbol. Symbols are case-normalized by the caller
// before submission; the store performs no normalization. On failure
// the set is left unchanged and the server message propagates.
func (s *Store) Add(ctx context.Context, symbol string) error {
	seq := s.seq.Add(1)

	symbols, err := s.client.WatchlistAdd(ctx, symbol)
	if err != nil {
		return err
	}

	s.apply(seq, symbols, "add")
	return nil
}

// Remove removes a symbol, symmetric to Add.
func (s *Store) Remove(ctx context.Context, symbol string) error {
	seq := s.seq.Add(1)

	symbols, err := s.client.WatchlistRemove(ctx, symbol)
	if err != nil {
		return err
	}

	s.apply(seq, symbols, "remove")
	return nil
}

// Symbols returns a copy of the current set in server order.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// apply replaces the set if seq is still the latest issued mutation.
func (s *Store) apply(seq uint64, symbols []string, op string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		s.logger.Debug().Str("op", op).Uint64("seq", seq).Msg("Stale watchlist response discarded")
		return
	}

	s.symbols = symbols
	s.logger.Debug().Str("op", op).Int("symbols", len(symbols)).Msg("Watchlist updated")
}
