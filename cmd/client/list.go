package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display every inventory item with its valuation" }
func (*listCmd) Usage() string {
	return `client list

  Renders the whole inventory as a table: quantity, cost, current market
  price and the derived return per item.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data listData
	if err := newAPIClient().do(ctx, http.MethodGet, "/items", nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if data.Count == 0 {
		fmt.Println("inventory is empty")
		return subcommands.ExitSuccess
	}
	printMarkdown(itemsMarkdown(data.Items))
	return subcommands.ExitSuccess
}

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find inventory items by name" }
func (*searchCmd) Usage() string {
	return `client search <keyword>

  Case-insensitive substring match on the item name.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (p *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fail(fmt.Errorf("search expects exactly one keyword"))
		return subcommands.ExitUsageError
	}

	var data listData
	path := "/items/search?keyword=" + queryEscape(f.Arg(0))
	if err := newAPIClient().do(ctx, http.MethodGet, path, nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if data.Count == 0 {
		fmt.Println("no items match")
		return subcommands.ExitSuccess
	}
	printMarkdown(itemsMarkdown(data.Items))
	return subcommands.ExitSuccess
}

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display aggregate inventory statistics" }
func (*statsCmd) Usage() string {
	return `client stats

  Total cost, total value and overall return of the inventory.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (p *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data statsData
	if err := newAPIClient().do(ctx, http.MethodGet, "/items/stats", nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(statsMarkdown(data))
	return subcommands.ExitSuccess
}
