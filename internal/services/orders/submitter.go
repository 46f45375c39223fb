// Package orders handles order submission and order history.
package orders

import (
	"context"
	"fmt"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// DefaultConfirmation is shown when the backend accepts an order
// without a message of its own. Settlement happens asynchronously on
// the backend; the client never waits for or polls it.
const DefaultConfirmation = "Order placed. It will settle shortly."

// HeldQuantityFunc reports the held quantity for a symbol, used to
// validate sells before any network call.
type HeldQuantityFunc func(symbol string) int64

// RefreshFunc is invoked after a confirmed submission so the caller can
// reload portfolio and wallet state. It runs strictly after the success
// response; no reload is issued speculatively.
type RefreshFunc func(ctx context.Context)

// Result is the terminal outcome of one submission. A new submission
// always starts fresh from Idle; there is no automatic retry.
type Result struct {
	State         models.SubmissionState // SubmissionSucceeded or SubmissionFailed
	Message       string
	NetworkCalled bool
}

// Succeeded reports whether the submission reached the backend and was
// accepted.
func (r Result) Succeeded() bool {
	return r.State == models.SubmissionSucceeded
}

// Submitter walks each order through
// Idle -> Validating -> Submitting -> {Succeeded, Failed}.
type Submitter struct {
	client   interfaces.BrokerageClient
	held     HeldQuantityFunc
	onFilled RefreshFunc
	logger   *common.Logger
}

// NewSubmitter creates a submitter. held may be nil when no sell
// validation against holdings is possible; onFilled may be nil.
func NewSubmitter(client interfaces.BrokerageClient, held HeldQuantityFunc, onFilled RefreshFunc, logger *common.Logger) *Submitter {
	return &Submitter{
		client:   client,
		held:     held,
		onFilled: onFilled,
		logger:   logger,
	}
}

// Submit validates and submits one order. Validation failures terminate
// locally with no network call; backend failures surface the server
// message verbatim and leave all local state untouched.
func (s *Submitter) Submit(ctx context.Context, order models.OrderIntent) Result {
	if msg, ok := s.validate(order); !ok {
		s.logger.Debug().Str("symbol", order.Symbol).Str("reason", msg).Msg("Order rejected locally")
		return Result{State: models.SubmissionFailed, Message: msg}
	}

	s.logger.Debug().
		Str("symbol", order.Symbol).
		Str("side", string(order.Side)).
		Int64("quantity", order.Quantity).
		Str("price", order.Price.String()).
		Str("total", order.Total().String()).
		Msg("Submitting order")

	var message string
	var err error
	switch order.Side {
	case models.SideSell:
		message, err = s.client.Sell(ctx, order)
	default:
		message, err = s.client.Buy(ctx, order)
	}

	if err != nil {
		return Result{State: models.SubmissionFailed, Message: err.Error(), NetworkCalled: true}
	}

	if message == "" {
		message = DefaultConfirmation
	}

	s.logger.Info().
		Str("symbol", order.Symbol).
		Str("side", string(order.Side)).
		Msg("Order accepted")

	if s.onFilled != nil {
		s.onFilled(ctx)
	}

	return Result{State: models.SubmissionSucceeded, Message: message, NetworkCalled: true}
}

// validate applies the client-side rules: positive price, positive
// integer quantity, and for sells a quantity within the held position.
func (s *Submitter) validate(order models.OrderIntent) (string, bool) {
	if !order.Price.IsPositive() {
		return "price must be greater than 0", false
	}
	if order.Quantity <= 0 {
		return "quantity must be greater than 0", false
	}

	if order.Side == models.SideSell && s.held != nil {
		held := s.held(order.Symbol)
		if order.Quantity > held {
			return fmt.Sprintf("sell quantity %d exceeds held quantity %d for %s", order.Quantity, held, order.Symbol), false
		}
	}

	return "", true
}
