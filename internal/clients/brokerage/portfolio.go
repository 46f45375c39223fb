package brokerage

import (
	"context"
	"net/http"

	"github.com/tradekit/tradekit/internal/models"
)

// Portfolio retrieves the full holdings list. The backend exposes no
// incremental path; consumers replace their collection wholesale.
func (c *Client) Portfolio(ctx context.Context) ([]models.Holding, error) {
	var resp struct {
		Holdings []models.Holding `json:"Holdings"`
	}
	if err := c.do(ctx, http.MethodGet, "/portfolio/all", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Holdings, nil
}
