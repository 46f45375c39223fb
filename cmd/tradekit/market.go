package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type quoteCmd struct {
	symbol string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show a live quote for one symbol" }
func (*quoteCmd) Usage() string {
	return `quote -symbol <symbol>

  Shows the current price, day range and change for one instrument.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "instrument symbol (required)")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := normalizeSymbol(c.symbol)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}

	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	quote, err := a.Client.Quote(ctx, symbol)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if quote.Price == nil {
		fmt.Printf("%s: price not available\n", symbol)
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s  %s  (%s, %.2f%%)\n", symbol, quote.Price.StringFixed(2), quote.Change.StringFixed(2), quote.ChangePct)
	fmt.Printf("open %s  high %s  low %s  prev close %s\n",
		quote.Open.StringFixed(2), quote.High.StringFixed(2),
		quote.Low.StringFixed(2), quote.PrevClose.StringFixed(2))
	return subcommands.ExitSuccess
}

type searchCmd struct {
	query string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search instruments" }
func (*searchCmd) Usage() string {
	return `search -q <query>

  Searches instruments by symbol or name.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "search query (required)")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query == "" {
		fmt.Fprintln(os.Stderr, "Error: -q is required.")
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

	results, err := a.Client.Search(ctx, c.query)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Symbol, r.Name, r.Type)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type popularCmd struct{}

func (*popularCmd) Name() string     { return "popular" }
func (*popularCmd) Synopsis() string { return "list popular instruments" }
func (*popularCmd) Usage() string {
	return `popular

  Lists the backend's curated popular instruments with prices.
`
}
func (*popularCmd) SetFlags(*flag.FlagSet) {}

func (c *popularCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	stocks, err := a.Client.Popular(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tPRICE\tCHANGE")
	for _, s := range stocks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%.2f%%)\n",
			s.Symbol, s.Name, s.Price.StringFixed(2), s.Change.StringFixed(2), s.ChangePct)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
