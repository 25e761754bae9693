package model

import "github.com/shopspring/decimal"

// InventoryItem is one inventory line: the raw fields entered by the user
// plus the derived valuation fields. The derived fields are always a pure
// function of (CostPerItem, NumberOfItems, CurrentPrice) and are rewritten
// together with the raw fields on every mutation.
type InventoryItem struct {
	ID            int64
	PurchaseDate  string // MM/DD/YYYY, fixed at creation unless edited
	ItemName      string // decoded from ItemLink at creation
	ItemLink      string // market listing URL, immutable after creation
	CostPerItem   decimal.Decimal
	NumberOfItems int64
	CurrentPrice  decimal.Decimal

	// Derived fields, never directly settable by a client.
	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}

// PurchaseDateFormat is the storage and wire format for purchase dates.
const PurchaseDateFormat = "01/02/2006"
