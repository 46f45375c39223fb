package brokerage

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tradekit/tradekit/internal/models"
)

// tradeBody serializes an order for the buy/sell endpoints. Price goes
// out as a bare JSON number.
type tradeBody struct {
	Symbol   string      `json:"symbol"`
	Quantity int64       `json:"quantity"`
	Price    json.Number `json:"price"`
}

// Buy submits a buy order. The backend settles asynchronously; the
// returned message confirms acceptance, not settlement.
func (c *Client) Buy(ctx context.Context, order models.OrderIntent) (string, error) {
	return c.trade(ctx, "/trade/buy", order)
}

// Sell submits a sell order, symmetric to Buy.
func (c *Client) Sell(ctx context.Context, order models.OrderIntent) (string, error) {
	return c.trade(ctx, "/trade/sell", order)
}

func (c *Client) trade(ctx context.Context, path string, order models.OrderIntent) (string, error) {
	body := tradeBody{
		Symbol:   order.Symbol,
		Quantity: order.Quantity,
		Price:    json.Number(order.Price.String()),
	}

	var resp messageEnvelope
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
