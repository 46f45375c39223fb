package brokerage

import (
	"context"
	"fmt"
	"net/http"
)

// watchlistEnvelope covers the watchlist endpoints, which answer either
// {watchlist: [...]} on success or {message} when the mutation was
// rejected despite a success status.
type watchlistEnvelope struct {
	Watchlist []string `json:"watchlist"`
	Message   string   `json:"message"`
}

// Watchlist retrieves the authoritative symbol set.
func (c *Client) Watchlist(ctx context.Context) ([]string, error) {
	var resp watchlistEnvelope
	if err := c.do(ctx, http.MethodGet, "/watchlist/all", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Watchlist, nil
}

// WatchlistAdd submits a symbol and returns the server's resulting set.
// A success status without a watchlist field means the server rejected
// the symbol (duplicate, invalid ticker); the server message is
// surfaced as the error.
func (c *Client) WatchlistAdd(ctx context.Context, symbol string) ([]string, error) {
	return c.mutateWatchlist(ctx, "/watchlist/add", symbol)
}

// WatchlistRemove removes a symbol, symmetric to WatchlistAdd.
func (c *Client) WatchlistRemove(ctx context.Context, symbol string) ([]string, error) {
	return c.mutateWatchlist(ctx, "/watchlist/remove", symbol)
}

func (c *Client) mutateWatchlist(ctx context.Context, path, symbol string) ([]string, error) {
	body := struct {
		Symbol string `json:"symbol"`
	}{Symbol: symbol}

	var resp watchlistEnvelope
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	if resp.Watchlist == nil {
		if resp.Message != "" {
			return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Message, Endpoint: path}
		}
		return nil, fmt.Errorf("watchlist response carried neither watchlist nor message")
	}

	return resp.Watchlist, nil
}
