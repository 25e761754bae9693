package usecase

import (
	"context"
	"time"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/model"
	"steaminvest/internal/valuation"
)

// Detail retrieves a single item by id. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (inventory.DetailItemOutput, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return inventory.DetailItemOutput{}, err
	}
	if item.ID == 0 {
		return inventory.DetailItemOutput{}, inventory.ErrItemNotFound
	}
	return inventory.DetailItemOutput{Item: item}, nil
}

// Update applies a partial update: only non-nil input fields replace the
// stored values. The valuation is recomputed unconditionally afterwards —
// cheap, and it keeps the derived fields consistent even when only
// unrelated fields changed — and everything is persisted in one UPDATE.
func (uc *implUseCase) Update(ctx context.Context, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	existing, err := uc.repo.GetItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}

	if input.ItemName != nil {
		existing.ItemName = *input.ItemName
	}
	if input.CostPerItem != nil {
		if input.CostPerItem.IsNegative() {
			return inventory.UpdateItemOutput{}, inventory.ErrNegativeCost
		}
		existing.CostPerItem = *input.CostPerItem
	}
	if input.NumberOfItems != nil {
		if *input.NumberOfItems < 0 {
			return inventory.UpdateItemOutput{}, inventory.ErrNegativeQuantity
		}
		existing.NumberOfItems = *input.NumberOfItems
	}
	if input.CurrentPrice != nil {
		existing.CurrentPrice = *input.CurrentPrice
	}
	if input.PurchaseDate != nil {
		parsed, perr := time.Parse(model.PurchaseDateFormat, *input.PurchaseDate)
		if perr != nil {
			return inventory.UpdateItemOutput{}, inventory.ErrInvalidDate
		}
		existing.PurchaseDate = parsed.Format(model.PurchaseDateFormat)
	}

	val := valuation.Recompute(existing.CostPerItem, existing.NumberOfItems, existing.CurrentPrice)

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:            existing.ID,
		PurchaseDate:  existing.PurchaseDate,
		ItemName:      existing.ItemName,
		CostPerItem:   existing.CostPerItem,
		NumberOfItems: existing.NumberOfItems,
		CurrentPrice:  existing.CurrentPrice,

		TotalCost:          val.TotalCost,
		TotalValue:         val.TotalValue,
		TotalReturnDollar:  val.TotalReturnDollar,
		TotalReturnPercent: val.TotalReturnPercent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	return inventory.UpdateItemOutput{Item: item}, nil
}

// Delete removes an item permanently and returns the removed record so
// callers can report what was deleted. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (inventory.DeleteItemOutput, error) {
	existing, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetItem: %v", err)
		return inventory.DeleteItemOutput{}, err
	}
	if existing.ID == 0 {
		return inventory.DeleteItemOutput{}, inventory.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return inventory.DeleteItemOutput{}, err
	}
	return inventory.DeleteItemOutput{Item: existing}, nil
}
