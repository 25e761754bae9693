package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal. Falls back to the raw text when
// the renderer cannot be built (e.g. no usable TTY profile).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// itemsMarkdown builds the inventory table.
func itemsMarkdown(items []item) string {
	var b strings.Builder
	b.WriteString("| ID | Purchased | Name | Qty | Cost | Price | Value | Return $ | Return % |\n")
	b.WriteString("|---:|---|---|---:|---:|---:|---:|---:|---:|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %s | %s | %s | %s |\n",
			it.ID, it.PurchaseDate, it.ItemName, it.NumberOfItems,
			it.CostPerItem, it.CurrentPrice, it.TotalValue,
			it.TotalReturnDollar, it.TotalReturnPercent)
	}
	return b.String()
}

// itemMarkdown builds the single-item detail block.
func itemMarkdown(it item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", it.ItemName)
	fmt.Fprintf(&b, "- **ID**: %d\n", it.ID)
	fmt.Fprintf(&b, "- **Purchased**: %s\n", it.PurchaseDate)
	fmt.Fprintf(&b, "- **Link**: %s\n", it.ItemLink)
	fmt.Fprintf(&b, "- **Quantity**: %d\n", it.NumberOfItems)
	fmt.Fprintf(&b, "- **Cost per item**: %s\n", it.CostPerItem)
	fmt.Fprintf(&b, "- **Current price**: %s\n", it.CurrentPrice)
	fmt.Fprintf(&b, "- **Total cost**: %s\n", it.TotalCost)
	fmt.Fprintf(&b, "- **Total value**: %s\n", it.TotalValue)
	fmt.Fprintf(&b, "- **Return**: %s (%s%%)\n", it.TotalReturnDollar, it.TotalReturnPercent)
	return b.String()
}

// statsMarkdown builds the statistics block.
func statsMarkdown(s statsData) string {
	var b strings.Builder
	b.WriteString("# Inventory statistics\n\n")
	fmt.Fprintf(&b, "- **Items**: %d\n", s.Count)
	fmt.Fprintf(&b, "- **Total cost**: %s\n", s.TotalCost)
	fmt.Fprintf(&b, "- **Total value**: %s\n", s.TotalValue)
	fmt.Fprintf(&b, "- **Return**: %s (%s%%)\n", s.TotalReturnDollar, s.TotalReturnPercent)
	return b.String()
}
