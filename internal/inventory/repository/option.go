package repository

import "github.com/shopspring/decimal"

// CreateItemOptions holds the full row for a new inventory item: raw fields
// plus the valuation derived from them. Raw and derived values are written
// in one INSERT so the consistency contract holds from the first read.
type CreateItemOptions struct {
	PurchaseDate  string
	ItemName      string
	ItemLink      string
	CostPerItem   decimal.Decimal
	NumberOfItems int64
	CurrentPrice  decimal.Decimal

	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}

// ListItemsOptions filters the listing. Keyword, when non-empty, matches
// the item name case-insensitively as a substring. Results are always
// ordered by ascending id.
type ListItemsOptions struct {
	Keyword string
}

// UpdateItemOptions rewrites every mutable field of an item in a single
// UPDATE. The use case computes the final state (including the refreshed
// valuation) before calling.
type UpdateItemOptions struct {
	ID            int64
	PurchaseDate  string
	ItemName      string
	CostPerItem   decimal.Decimal
	NumberOfItems int64
	CurrentPrice  decimal.Decimal

	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}

// UpdatePriceOptions is the price-refresh write path: current price plus
// the re-derived fields, nothing else, in one UPDATE.
type UpdatePriceOptions struct {
	ID           int64
	CurrentPrice decimal.Decimal

	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}
