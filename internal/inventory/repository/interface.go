package repository

import (
	"context"

	"steaminvest/internal/model"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for inventory items.
// Get-style methods return a zero-value item (ID == 0) when nothing
// matches — not-found is not an error at this layer.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.InventoryItem, error)
	GetItem(ctx context.Context, id int64) (model.InventoryItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.InventoryItem, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.InventoryItem, error)
	UpdateItemPrice(ctx context.Context, opt UpdatePriceOptions) (model.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
}
