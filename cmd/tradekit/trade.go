package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/tradekit/tradekit/internal/models"
)

// tradeFlags holds the shared buy/sell submission flags.
type tradeFlags struct {
	symbol   string
	quantity int64
	price    string
}

func (t *tradeFlags) register(f *flag.FlagSet) {
	f.StringVar(&t.symbol, "symbol", "", "instrument symbol (required)")
	f.Int64Var(&t.quantity, "quantity", 0, "number of shares (required)")
	f.StringVar(&t.price, "price", "", "limit price (required)")
}

func (t *tradeFlags) intent(side models.OrderSide) (models.OrderIntent, error) {
	if t.symbol == "" {
		return models.OrderIntent{}, fmt.Errorf("-symbol is required")
	}
	price, err := decimal.NewFromString(t.price)
	if err != nil {
		return models.OrderIntent{}, fmt.Errorf("invalid price %q", t.price)
	}
	return models.OrderIntent{
		Symbol:   strings.ToUpper(strings.TrimSpace(t.symbol)),
		Quantity: t.quantity,
		Price:    price,
		Side:     side,
	}, nil
}

func runTrade(ctx context.Context, flags *tradeFlags, side models.OrderSide) subcommands.ExitStatus {
	order, err := flags.intent(side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	// Sells are validated against current holdings; load them first so
	// the quantity check runs locally before any trade call.
	if side == models.SideSell {
		if err := a.Portfolio.Load(ctx); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}

	result := a.Orders.Submit(ctx, order)
	if !result.Succeeded() {
		fmt.Fprintf(os.Stderr, "Order failed: %s\n", result.Message)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s (total %s)\n", result.Message, order.Total().StringFixed(2))
	return subcommands.ExitSuccess
}

type buyCmd struct {
	flags tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "place a buy order" }
func (*buyCmd) Usage() string {
	return `buy -symbol <symbol> -quantity <n> -price <price>

  Places a buy order. The backend settles asynchronously; wallet and
  portfolio are reloaded once the order is accepted.
`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTrade(ctx, &c.flags, models.SideBuy)
}

type sellCmd struct {
	flags tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "place a sell order" }
func (*sellCmd) Usage() string {
	return `sell -symbol <symbol> -quantity <n> -price <price>

  Places a sell order. The quantity must not exceed the held quantity;
  that check runs locally before any network call.
`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTrade(ctx, &c.flags, models.SideSell)
}
