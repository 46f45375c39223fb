package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoldingDerivedValues(t *testing.T) {
	h := Holding{
		Symbol:       "AAPL",
		Quantity:     3,
		BuyPrice:     decimal.RequireFromString("148.00"),
		CurrentPrice: decimal.RequireFromString("150.25"),
	}

	assert.True(t, h.CostBasis().Equal(decimal.RequireFromString("444.00")))
	assert.True(t, h.MarketValue().Equal(decimal.RequireFromString("450.75")))
	assert.True(t, h.ProfitLoss().Equal(decimal.RequireFromString("6.75")))
}

func TestHoldingLossIsNegative(t *testing.T) {
	h := Holding{
		Symbol:       "TSLA",
		Quantity:     2,
		BuyPrice:     decimal.RequireFromString("400"),
		CurrentPrice: decimal.RequireFromString("390"),
	}

	assert.True(t, h.ProfitLoss().Equal(decimal.RequireFromString("-20")))
}

func TestOrderIntentTotal(t *testing.T) {
	o := OrderIntent{Symbol: "AAPL", Quantity: 3, Price: decimal.RequireFromString("150.25")}
	assert.True(t, o.Total().Equal(decimal.RequireFromString("450.75")))
}
