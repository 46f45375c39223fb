package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type watchlistCmd struct{}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "list watched symbols" }
func (*watchlistCmd) Usage() string {
	return `watchlist

  Lists the watched symbols in server order.
`
}
func (*watchlistCmd) SetFlags(*flag.FlagSet) {}

func (c *watchlistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	if err := a.Watchlist.Load(ctx); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	symbols := a.Watchlist.Symbols()
	if len(symbols) == 0 {
		fmt.Println("Watchlist is empty.")
		return subcommands.ExitSuccess
	}
	for _, s := range symbols {
		fmt.Println(s)
	}
	return subcommands.ExitSuccess
}

// normalizeSymbol applies the caller-side uppercase normalization the
// stores themselves do not perform.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

type watchAddCmd struct {
	symbol string
}

func (*watchAddCmd) Name() string     { return "watch-add" }
func (*watchAddCmd) Synopsis() string { return "add a symbol to the watchlist" }
func (*watchAddCmd) Usage() string {
	return `watch-add -symbol <symbol>

  Adds a symbol. The local set is replaced with the server's resulting
  set, so a rejected symbol never appears.
`
}

func (c *watchAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "instrument symbol (required)")
}

func (c *watchAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutateWatchlist(ctx, c.symbol, true)
}

type watchRemoveCmd struct {
	symbol string
}

func (*watchRemoveCmd) Name() string     { return "watch-remove" }
func (*watchRemoveCmd) Synopsis() string { return "remove a symbol from the watchlist" }
func (*watchRemoveCmd) Usage() string {
	return `watch-remove -symbol <symbol>

  Removes a symbol, symmetric to watch-add.
`
}

func (c *watchRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "instrument symbol (required)")
}

func (c *watchRemoveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutateWatchlist(ctx, c.symbol, false)
}

func mutateWatchlist(ctx context.Context, symbol string, add bool) subcommands.ExitStatus {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
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

	if add {
		err = a.Watchlist.Add(ctx, symbol)
	} else {
		err = a.Watchlist.Remove(ctx, symbol)
	}
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Watchlist: %s\n", strings.Join(a.Watchlist.Symbols(), ", "))
	return subcommands.ExitSuccess
}
