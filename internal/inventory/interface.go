package inventory

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Search(ctx context.Context, keyword string) (ListItemsOutput, error)
	Detail(ctx context.Context, id int64) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id int64) (DeleteItemOutput, error)

	// Stats aggregates the full inventory.
	Stats(ctx context.Context) (StatsOutput, error)
}
