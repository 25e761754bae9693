package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/valuation"
)

var hundred = decimal.NewFromInt(100)

// Stats sums the stored valuation over the whole inventory. The aggregate
// return percent follows the same zero-cost policy as the per-item one.
func (uc *implUseCase) Stats(ctx context.Context) (inventory.StatsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListItems: %v", err)
		return inventory.StatsOutput{}, err
	}

	out := inventory.StatsOutput{Count: len(items)}
	for _, item := range items {
		out.TotalCost = out.TotalCost.Add(item.TotalCost)
		out.TotalValue = out.TotalValue.Add(item.TotalValue)
		out.TotalReturnDollar = out.TotalReturnDollar.Add(item.TotalReturnDollar)
	}
	if !out.TotalCost.IsZero() {
		out.TotalReturnPercent = out.TotalReturnDollar.Div(out.TotalCost).Mul(hundred).Round(valuation.Scale)
	}
	return out, nil
}
