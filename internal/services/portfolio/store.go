// Package portfolio tracks the signed-in user's holdings.
package portfolio

import (
	"context"
	"sync"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// Compile-time interface check
var _ interfaces.PortfolioStore = (*Store)(nil)

// Store implements PortfolioStore. Every load replaces the whole
// collection from the backend; there is no partial update path. That
// trades network chattiness for trivial consistency: no client-side
// merge logic, no divergence beyond the reload window.
type Store struct {
	client interfaces.BrokerageClient
	logger *common.Logger

	mu       sync.RWMutex
	holdings []models.Holding
}

// NewStore creates a new portfolio store.
func NewStore(client interfaces.BrokerageClient, logger *common.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Load fetches the full holdings list and replaces the local
// collection. It runs at mount, after every successful buy or sell,
// and whenever a consumer explicitly requests a refresh.
func (s *Store) Load(ctx context.Context) error {
	holdings, err := s.client.Portfolio(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.holdings = holdings
	s.mu.Unlock()

	s.logger.Debug().Int("holdings", len(holdings)).Msg("Portfolio loaded")
	return nil
}

// Holdings returns a copy of the current holdings.
func (s *Store) Holdings() []models.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// HeldQuantity returns the held quantity for a symbol, or 0 when the
// symbol is not held. Used to validate sells before any network call.
func (s *Store) HeldQuantity(symbol string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, h := range s.holdings {
		if h.Symbol == symbol {
			total += h.Quantity
		}
	}
	return total
}
