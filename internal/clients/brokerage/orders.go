package brokerage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tradekit/tradekit/internal/models"
)

// Orders retrieves the order history.
func (c *Client) Orders(ctx context.Context) ([]models.OrderRecord, error) {
	var resp struct {
		Orders []models.OrderRecord `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/order/all", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Orders, nil
}

// DeleteOrder removes an order by id and returns the backend message.
func (c *Client) DeleteOrder(ctx context.Context, id string) (string, error) {
	var resp messageEnvelope
	path := fmt.Sprintf("/order/delete/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
