package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide is the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderIntent is a transient order submission: constructed, validated,
// submitted, discarded. It is never stored as client state beyond the
// pending network call.
type OrderIntent struct {
	Symbol   string          `json:"symbol"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Side     OrderSide       `json:"-"`
}

// Total returns price * quantity, computed locally for display only.
// Settlement economics are backend-owned and never recomputed here.
func (o *OrderIntent) Total() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Quantity))
}

// SubmissionState is the state machine position of one order submission.
// A new submission always starts fresh from Idle.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionValidating
	SubmissionSubmitting
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionValidating:
		return "validating"
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OrderRecord is one entry of the backend's order history listing.
type OrderRecord struct {
	ID        string          `json:"_id"`
	Symbol    string          `json:"symbol"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
