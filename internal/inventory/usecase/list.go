package usecase

import (
	"context"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
)

// List returns every inventory item ordered by ascending id.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}
	return inventory.ListItemsOutput{Items: items, Count: len(items)}, nil
}

// Search returns items whose name contains keyword, case-insensitively.
func (uc *implUseCase) Search(ctx context.Context, keyword string) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Keyword: keyword})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}
	return inventory.ListItemsOutput{Items: items, Count: len(items)}, nil
}
