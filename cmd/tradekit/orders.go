package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list order history" }
func (*ordersCmd) Usage() string {
	return `orders

  Lists submitted orders with their backend status.
`
}
func (*ordersCmd) SetFlags(*flag.FlagSet) {}

func (c *ordersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if !requireAuth(a) {
		return subcommands.ExitFailure
	}

	records, err := a.History.List(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if len(records) == 0 {
		fmt.Println("No orders.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tQTY\tPRICE\tTYPE\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Symbol, r.Quantity, r.Price.StringFixed(2), r.Type, r.Status)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type orderDeleteCmd struct {
	id string
}

func (*orderDeleteCmd) Name() string     { return "order-delete" }
func (*orderDeleteCmd) Synopsis() string { return "delete an order by id" }
func (*orderDeleteCmd) Usage() string {
	return `order-delete -id <order-id>

  Deletes one order from the backend history.
`
}

func (c *orderDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "order id (required)")
}

func (c *orderDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
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

	message, err := a.History.Delete(ctx, c.id)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if message == "" {
		message = "Order deleted."
	}
	fmt.Println(message)
	return subcommands.ExitSuccess
}
