package watchlist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
)

type stubClient struct {
	interfaces.BrokerageClient

	mu         sync.Mutex
	symbols    []string
	err        error
	addGate    chan struct{} // when set, WatchlistAdd blocks until closed
	addEntered chan struct{} // when set, closed once WatchlistAdd is reached
	addReply   []string
}

func (c *stubClient) Watchlist(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbols, c.err
}

func (c *stubClient) WatchlistAdd(ctx context.Context, symbol string) ([]string, error) {
	c.mu.Lock()
	gate := c.addGate
	entered := c.addEntered
	reply := c.addReply
	err := c.err
	c.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if gate != nil {
		<-gate
	}
	return reply, err
}

func (c *stubClient) WatchlistRemove(ctx context.Context, symbol string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbols, c.err
}

func newTestStore(client *stubClient) *Store {
	return NewStore(client, common.NewSilentLogger())
}

func TestLoadReplacesSet(t *testing.T) {
	client := &stubClient{symbols: []string{"AAPL", "TSLA"}}
	store := newTestStore(client)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, []string{"AAPL", "TSLA"}, store.Symbols())
}

func TestAddUsesServerSetNotLocalAppend(t *testing.T) {
	// The server dedupes and orders; the resulting set is whatever it
	// says, even if that differs from a local append.
	client := &stubClient{addReply: []string{"TSLA", "AAPL"}}
	store := newTestStore(client)

	require.NoError(t, store.Add(context.Background(), "TSLA"))
	assert.Equal(t, []string{"TSLA", "AAPL"}, store.Symbols())
}

func TestMutationFailureKeepsSet(t *testing.T) {
	client := &stubClient{symbols: []string{"AAPL"}}
	store := newTestStore(client)
	require.NoError(t, store.Load(context.Background()))

	client.mu.Lock()
	client.err = errors.New("Stock already in watchlist")
	client.mu.Unlock()

	require.Error(t, store.Remove(context.Background(), "AAPL"))
	assert.Equal(t, []string{"AAPL"}, store.Symbols())
}

func TestStaleResponseDiscarded(t *testing.T) {
	// An Add issued before a Load but completing after it must not
	// overwrite the newer set.
	gate := make(chan struct{})
	entered := make(chan struct{})
	client := &stubClient{
		symbols:    []string{"AAPL", "TSLA", "MSFT"},
		addGate:    gate,
		addEntered: entered,
		addReply:   []string{"AAPL"},
	}
	store := newTestStore(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Add(context.Background(), "AAPL") // blocks on the gate
	}()

	// The later Load completes while the Add is still in flight.
	<-entered
	require.NoError(t, store.Load(context.Background()))
	require.Equal(t, []string{"AAPL", "TSLA", "MSFT"}, store.Symbols())

	// Release the stale Add; its response must be discarded.
	close(gate)
	wg.Wait()
	assert.Equal(t, []string{"AAPL", "TSLA", "MSFT"}, store.Symbols())
}

func TestSymbolsReturnsCopy(t *testing.T) {
	client := &stubClient{symbols: []string{"AAPL"}}
	store := newTestStore(client)
	require.NoError(t, store.Load(context.Background()))

	symbols := store.Symbols()
	symbols[0] = "mutated"
	assert.Equal(t, []string{"AAPL"}, store.Symbols())
}
