package orders

import (
	"context"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// History reads and prunes the backend order listing.
type History struct {
	client interfaces.BrokerageClient
	logger *common.Logger
}

// NewHistory creates an order history reader.
func NewHistory(client interfaces.BrokerageClient, logger *common.Logger) *History {
	return &History{client: client, logger: logger}
}

// List retrieves all orders for the signed-in user.
func (h *History) List(ctx context.Context) ([]models.OrderRecord, error) {
	return h.client.Orders(ctx)
}

// Delete removes an order by id and returns the backend message.
func (h *History) Delete(ctx context.Context, id string) (string, error) {
	message, err := h.client.DeleteOrder(ctx, id)
	if err != nil {
		return "", err
	}

	h.logger.Info().Str("order", id).Msg("Order deleted")
	return message, nil
}
