package models

import "github.com/shopspring/decimal"

// Holding is a portfolio position in one symbol. Holdings are always
// replaced wholesale from the backend response, never mutated locally.
type Holding struct {
	ID           string          `json:"_id"`
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	BuyPrice     decimal.Decimal `json:"buyPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// ProfitLoss returns (currentPrice - buyPrice) * quantity. It is derived
// on every read and never persisted client-side.
func (h *Holding) ProfitLoss() decimal.Decimal {
	return h.CurrentPrice.Sub(h.BuyPrice).Mul(decimal.NewFromInt(h.Quantity))
}

// MarketValue returns currentPrice * quantity.
func (h *Holding) MarketValue() decimal.Decimal {
	return h.CurrentPrice.Mul(decimal.NewFromInt(h.Quantity))
}

// CostBasis returns buyPrice * quantity.
func (h *Holding) CostBasis() decimal.Decimal {
	return h.BuyPrice.Mul(decimal.NewFromInt(h.Quantity))
}
