package brokerage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tradekit/tradekit/internal/models"
)

// Quote retrieves a live quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote models.Quote
	path := fmt.Sprintf("/stock/quote/%s", url.PathEscape(symbol))
	if err := c.do(ctx, http.MethodGet, path, nil, &quote); err != nil {
		return nil, err
	}

	quote.Symbol = symbol
	return &quote, nil
}

// Search looks up instruments matching a query. The backend answers
// with either a `results` or a `Data` field depending on the call site
// it grew from; both are accepted here so callers see one shape.
// TODO: drop the Data fallback once the backend settles on one field name.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var resp struct {
		Results []models.SearchResult `json:"results"`
		Data    []models.SearchResult `json:"Data"`
	}
	path := fmt.Sprintf("/stock/search/%s", url.PathEscape(query))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Results != nil {
		return resp.Results, nil
	}
	return resp.Data, nil
}

// Popular retrieves the curated popular-instruments list.
func (c *Client) Popular(ctx context.Context) ([]models.PopularStock, error) {
	var resp struct {
		Stocks []models.PopularStock `json:"stocks"`
	}
	if err := c.do(ctx, http.MethodGet, "/stock/popular", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Stocks, nil
}
