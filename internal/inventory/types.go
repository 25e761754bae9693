package inventory

import (
	"github.com/shopspring/decimal"

	"steaminvest/internal/model"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	ItemLink      string
	CostPerItem   decimal.Decimal
	NumberOfItems int64
}

// UpdateItemInput is a partial update: nil pointer means "leave untouched".
type UpdateItemInput struct {
	ID            int64
	ItemName      *string
	CostPerItem   *decimal.Decimal
	NumberOfItems *int64
	CurrentPrice  *decimal.Decimal
	PurchaseDate  *string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.InventoryItem

	// PriceUnavailable is set when the initial lookup failed and the item
	// was created with a zero current price.
	PriceUnavailable bool
}

type ListItemsOutput struct {
	Items []model.InventoryItem
	Count int
}

type DetailItemOutput struct {
	Item model.InventoryItem
}

type UpdateItemOutput struct {
	Item model.InventoryItem
}

type DeleteItemOutput struct {
	Item model.InventoryItem
}

// StatsOutput aggregates the whole inventory, mirroring the dashboard
// statistics panel.
type StatsOutput struct {
	Count              int
	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}
