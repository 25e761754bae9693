package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/model"
	"steaminvest/internal/valuation"
	"steaminvest/pkg/steammarket"
)

// Create validates the raw fields, resolves the item name and an initial
// market price from the listing link, derives the valuation and persists the
// new item.
//
// A failed price lookup does NOT fail creation: the item is stored with a
// zero current price and the caller is told the price was unavailable, so
// a later refresh can fill it in.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	if input.CostPerItem.IsNegative() {
		return inventory.CreateItemOutput{}, inventory.ErrNegativeCost
	}
	if input.NumberOfItems < 0 {
		return inventory.CreateItemOutput{}, inventory.ErrNegativeQuantity
	}

	itemName, err := steammarket.DisplayName(input.ItemLink)
	if err != nil {
		return inventory.CreateItemOutput{}, inventory.ErrInvalidLink
	}

	priceUnavailable := false
	currentPrice, err := uc.prices.Lookup(ctx, input.ItemLink)
	if err != nil {
		if !errors.Is(err, steammarket.ErrUnavailable) {
			uc.l.Errorf(ctx, "uc.Create Lookup: %v", err)
			return inventory.CreateItemOutput{}, err
		}
		uc.l.Warnf(ctx, "uc.Create: price unavailable for %q, creating with price 0: %v", itemName, err)
		currentPrice = decimal.Zero
		priceUnavailable = true
	}

	val := valuation.Recompute(input.CostPerItem, input.NumberOfItems, currentPrice)

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		PurchaseDate:  time.Now().Format(model.PurchaseDateFormat),
		ItemName:      itemName,
		ItemLink:      input.ItemLink,
		CostPerItem:   input.CostPerItem,
		NumberOfItems: input.NumberOfItems,
		CurrentPrice:  currentPrice,

		TotalCost:          val.TotalCost,
		TotalValue:         val.TotalValue,
		TotalReturnDollar:  val.TotalReturnDollar,
		TotalReturnPercent: val.TotalReturnPercent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	return inventory.CreateItemOutput{Item: item, PriceUnavailable: priceUnavailable}, nil
}
