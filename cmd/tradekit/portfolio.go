package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list holdings with profit/loss" }
func (*portfolioCmd) Usage() string {
	return `portfolio

  Lists holdings. Profit/loss is derived from the backend's buy and
  current prices, never stored locally.
`
}
func (*portfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	if err := a.Portfolio.Load(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	holdings := a.Portfolio.Holdings()
	if len(holdings) == 0 {
		fmt.Println("No holdings.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tQTY\tBUY\tCURRENT\tP/L")
	for _, h := range holdings {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			h.Symbol, h.Quantity,
			h.BuyPrice.StringFixed(2),
			h.CurrentPrice.StringFixed(2),
			h.ProfitLoss().StringFixed(2))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
