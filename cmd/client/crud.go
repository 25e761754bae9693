package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/subcommands"
)

func parseIDArg(f *flag.FlagSet) (int64, error) {
	if f.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one item id")
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("item id must be a positive integer, got %q", f.Arg(0))
	}
	return id, nil
}

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "display one inventory item" }
func (*getCmd) Usage() string {
	return `client get <id>

  Full detail of a single inventory item.
`
}

func (*getCmd) SetFlags(f *flag.FlagSet) {}

func (p *getCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseIDArg(f)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}

	var data itemData
	if err := newAPIClient().do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(itemMarkdown(data.Item))
	return subcommands.ExitSuccess
}

type addCmd struct {
	link string
	cost string
	qty  int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item from its market listing link" }
func (*addCmd) Usage() string {
	return `client add -link <listing-url> -cost <cost-per-item> -qty <count>

  The item name and an initial market price are resolved from the listing
  link. When the market is unreachable the item is still created with a
  zero price; refresh it later.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.link, "link", "", "Market listing URL of the item.")
	f.StringVar(&p.cost, "cost", "0", "Purchase cost per item.")
	f.Int64Var(&p.qty, "qty", 1, "Number of items bought.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.link == "" {
		fail(fmt.Errorf("-link is required"))
		return subcommands.ExitUsageError
	}

	body := map[string]any{
		"item_link":       p.link,
		"cost_per_item":   p.cost,
		"number_of_items": p.qty,
	}
	var data itemData
	if err := newAPIClient().do(ctx, http.MethodPost, "/items", body, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if data.PriceUnavailable {
		fmt.Println("warning: market price unavailable, item created with price 0")
	}
	printMarkdown(itemMarkdown(data.Item))
	return subcommands.ExitSuccess
}

type updateCmd struct {
	name  string
	cost  string
	qty   int64
	price string
	date  string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of an item (partial update)" }
func (*updateCmd) Usage() string {
	return `client update <id> [-name N] [-cost C] [-qty Q] [-price P] [-date MM/DD/YYYY]

  Only the flags you pass are changed; everything else keeps its stored
  value. The valuation is recomputed server-side.
`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "New item name.")
	f.StringVar(&p.cost, "cost", "", "New purchase cost per item.")
	f.Int64Var(&p.qty, "qty", 0, "New item count.")
	f.StringVar(&p.price, "price", "", "Override the current market price.")
	f.StringVar(&p.date, "date", "", "New purchase date (MM/DD/YYYY).")
}

func (p *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseIDArg(f)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set go into the body, so unset fields
	// stay untouched server-side.
	body := map[string]any{}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			body["item_name"] = p.name
		case "cost":
			body["cost_per_item"] = p.cost
		case "qty":
			body["number_of_items"] = p.qty
		case "price":
			body["current_price"] = p.price
		case "date":
			body["purchase_date"] = p.date
		}
	})
	if len(body) == 0 {
		fail(fmt.Errorf("nothing to update, pass at least one flag"))
		return subcommands.ExitUsageError
	}

	var data itemData
	if err := newAPIClient().do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), body, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(itemMarkdown(data.Item))
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an item permanently" }
func (*deleteCmd) Usage() string {
	return `client delete <id>

  Removes the item and prints what was deleted.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (p *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseIDArg(f)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}

	var data itemData
	if err := newAPIClient().do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, &data); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("deleted item %d: %s\n", data.Item.ID, data.Item.ItemName)
	return subcommands.ExitSuccess
}
