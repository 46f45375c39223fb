package brokerage

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// amountBody serializes a decimal amount as a bare JSON number, which
// is what the backend expects.
type amountBody struct {
	Amount json.Number `json:"amount"`
}

func newAmountBody(amount decimal.Decimal) amountBody {
	return amountBody{Amount: json.Number(amount.String())}
}

// AddFunds deposits cash and returns the authoritative balance the
// backend reports after the deposit.
func (c *Client) AddFunds(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	var resp struct {
		Wallet decimal.Decimal `json:"wallet"`
	}
	if err := c.do(ctx, http.MethodPost, "/wallet/add", newAmountBody(amount), &resp); err != nil {
		return decimal.Decimal{}, err
	}

	return resp.Wallet, nil
}

// Withdraw removes cash. The backend confirms with a message only, not
// a balance; callers re-load the wallet for the authoritative value.
func (c *Client) Withdraw(ctx context.Context, amount decimal.Decimal) (string, error) {
	var resp messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/wallet/withdrawal", newAmountBody(amount), &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
