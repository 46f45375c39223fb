package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/google/subcommands"

	"github.com/tradekit/tradekit/internal/services/pricefeed"
)

type watchCmd struct {
	symbol string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "stream live prices for the watchlist" }
func (*watchCmd) Usage() string {
	return `watch [-symbol <symbol>]

  Polls prices on the configured cadence and prints each complete
  snapshot until interrupted. With -symbol, follows that single
  instrument instead of the watchlist.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "follow one symbol instead of the watchlist")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	source := pricefeed.FixedSymbol(normalizeSymbol(c.symbol))
	if c.symbol == "" {
		if err := a.Watchlist.Load(ctx); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		if len(a.Watchlist.Symbols()) == 0 {
			fmt.Println("Watchlist is empty.")
			return subcommands.ExitSuccess
		}
		// Membership is re-read each cycle, so additions made elsewhere
		// show up on the next cycle without restarting the stream.
		source = a.Watchlist.Symbols
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	sub := a.PriceFeed.Subscribe(ctx, source)
	defer sub.Close()

	for snap := range sub.Snapshots() {
		symbols := make([]string, 0, len(snap.Prices))
		for symbol := range snap.Prices {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		fmt.Printf("-- %s --\n", snap.At.Format("15:04:05"))
		for _, symbol := range symbols {
			point := snap.Prices[symbol]
			if point.Available {
				fmt.Printf("%-8s %s\n", symbol, point.Price.StringFixed(2))
			} else {
				fmt.Printf("%-8s not available\n", symbol)
			}
		}
	}

	return subcommands.ExitSuccess
}
