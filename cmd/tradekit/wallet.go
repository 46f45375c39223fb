package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type walletCmd struct{}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "show the cash balance" }
func (*walletCmd) Usage() string {
	return `wallet

  Shows the wallet balance reconciled against the backend.
`
}
func (*walletCmd) SetFlags(*flag.FlagSet) {}

func (c *walletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	if err := a.Wallet.Load(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Balance: %s\n", a.Wallet.Balance().StringFixed(2))
	return subcommands.ExitSuccess
}

// parseAmount validates a positive decimal amount flag.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("-amount is required")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than 0")
	}
	return amount, nil
}

type depositCmd struct {
	amount string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add funds to the wallet" }
func (*depositCmd) Usage() string {
	return `deposit -amount <amount>

  Adds funds. The balance shown afterwards is the backend's value.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "amount to add (required)")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
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

	if err := a.Wallet.Add(ctx, amount); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s. Balance: %s\n", amount.StringFixed(2), a.Wallet.Balance().StringFixed(2))
	return subcommands.ExitSuccess
}

type withdrawCmd struct {
	amount string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw funds from the wallet" }
func (*withdrawCmd) Usage() string {
	return `withdraw -amount <amount>

  Withdraws funds. The amount must not exceed the current balance;
  that check runs locally before any network call.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "amount to withdraw (required)")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
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

	if err := a.Wallet.Load(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	// Precondition belongs to the caller: reject before any network call.
	if amount.GreaterThan(a.Wallet.Balance()) {
		fmt.Fprintf(os.Stderr, "Error: insufficient balance (%s available)\n", a.Wallet.Balance().StringFixed(2))
		return subcommands.ExitFailure
	}

	if err := a.Wallet.Withdraw(ctx, amount); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdrew %s. Balance: %s\n", amount.StringFixed(2), a.Wallet.Balance().StringFixed(2))
	return subcommands.ExitSuccess
}
