// Command tradekit is a terminal client for the trading backend:
// authentication, wallet, watchlist with live prices, portfolio, and
// order placement.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&loginCmd{}, "session")
	commander.Register(&registerCmd{}, "session")
	commander.Register(&logoutCmd{}, "session")
	commander.Register(&whoamiCmd{}, "session")
	commander.Register(&statusCmd{}, "session")

	commander.Register(&walletCmd{}, "wallet")
	commander.Register(&depositCmd{}, "wallet")
	commander.Register(&withdrawCmd{}, "wallet")

	commander.Register(&portfolioCmd{}, "trading")
	commander.Register(&buyCmd{}, "trading")
	commander.Register(&sellCmd{}, "trading")
	commander.Register(&ordersCmd{}, "trading")
	commander.Register(&orderDeleteCmd{}, "trading")

	commander.Register(&watchlistCmd{}, "market")
	commander.Register(&watchAddCmd{}, "market")
	commander.Register(&watchRemoveCmd{}, "market")
	commander.Register(&watchCmd{}, "market")
	commander.Register(&quoteCmd{}, "market")
	commander.Register(&searchCmd{}, "market")
	commander.Register(&popularCmd{}, "market")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
