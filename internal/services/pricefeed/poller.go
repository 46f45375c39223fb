// Package pricefeed polls instrument quotes and publishes per-cycle
// snapshots to subscribers.
package pricefeed

import (
	"context"
	"sync"
	"time"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// DefaultInterval is the polling cadence when none is configured.
const DefaultInterval = 5 * time.Second

// Compile-time interface check
var _ interfaces.PriceFeed = (*Poller)(nil)

// Poller implements PriceFeed. One poller serves any number of
// subscriptions; each subscription owns its own schedule and
// cancellation, so closing one never affects another polling the same
// symbols.
type Poller struct {
	quotes   interfaces.QuoteGetter
	interval time.Duration
	logger   *common.Logger
}

// NewPoller creates a poller with the given cadence. A non-positive
// interval falls back to DefaultInterval.
func NewPoller(quotes interfaces.QuoteGetter, interval time.Duration, logger *common.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		quotes:   quotes,
		interval: interval,
		logger:   logger,
	}
}

// FixedSymbol returns a source that always yields one symbol. Detail
// views poll a single instrument independent of the watchlist.
func FixedSymbol(symbol string) interfaces.SymbolSource {
	return func() []string { return []string{symbol} }
}

// Subscribe starts polling and returns the subscriber's handle. The
// first cycle runs immediately, then one per interval. The source is
// re-evaluated at the start of every cycle, so membership changes take
// effect on the next cycle without forcing an immediate re-fetch.
func (p *Poller) Subscribe(ctx context.Context, source interfaces.SymbolSource) interfaces.Subscription {
	sub := &subscription{
		snapshots: make(chan models.Snapshot, 1),
		done:      make(chan struct{}),
	}

	go p.run(ctx, source, sub)
	return sub
}

// run drives one subscription's cycles. Each cycle publishes only after
// every request of that cycle has settled; a slow cycle does not block
// the next from being issued once the interval elapses, and a cycle
// that finishes after a later one has already published is discarded.
func (p *Poller) run(ctx context.Context, source interfaces.SymbolSource, sub *subscription) {
	defer sub.Close()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var mu sync.Mutex
	var issued, published uint64

	launch := func() {
		issued++
		cycle := issued
		go func() {
			snap := p.collect(ctx, source())
			mu.Lock()
			defer mu.Unlock()
			if cycle <= published {
				p.logger.Debug().Uint64("cycle", cycle).Msg("Late poll cycle discarded")
				return
			}
			published = cycle
			sub.deliver(snap)
		}()
	}

	launch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.done:
			return
		case <-ticker.C:
			launch()
		}
	}
}

// collect issues one quote request per symbol concurrently and builds a
// complete replacement snapshot. A failed or priceless fetch marks its
// symbol unavailable for this cycle only; it never contaminates other
// symbols or halts the poller.
func (p *Poller) collect(ctx context.Context, symbols []string) models.Snapshot {
	snap := models.Snapshot{
		Prices: make(map[string]models.PricePoint, len(symbols)),
		At:     time.Now(),
	}
	if len(symbols) == 0 {
		return snap
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			point := models.PricePoint{Symbol: symbol}
			quote, err := p.quotes.Quote(ctx, symbol)
			if err != nil {
				p.logger.Debug().Err(err).Str("symbol", symbol).Msg("Quote fetch failed for cycle")
			} else if quote.Price != nil {
				point.Price = *quote.Price
				point.Available = true
			}

			mu.Lock()
			snap.Prices[symbol] = point
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	return snap
}

// subscription is one consumer's handle. The unconsumed snapshot, if
// any, is replaced when a newer one arrives: consumers always see the
// freshest complete snapshot, never a partial merge.
type subscription struct {
	mu        sync.Mutex
	snapshots chan models.Snapshot
	done      chan struct{}
	closed    bool
}

// Snapshots returns the snapshot stream. The channel is closed when the
// subscription ends.
func (s *subscription) Snapshots() <-chan models.Snapshot {
	return s.snapshots
}

// Close stops this subscription's polling. Closing twice is safe.
func (s *subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	close(s.snapshots)
}

func (s *subscription) deliver(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	// Drop the unconsumed previous snapshot so the send cannot block.
	select {
	case <-s.snapshots:
	default:
	}
	s.snapshots <- snap
}
