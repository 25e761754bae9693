package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"steaminvest/internal/inventory/repository"
	"steaminvest/internal/model"
	"steaminvest/internal/refresh"
	"steaminvest/internal/valuation"
	"steaminvest/pkg/steammarket"
)

// RefreshOne looks up one item's market price and persists the recomputed
// valuation in a single UPDATE. A failed lookup leaves the stored price
// untouched — a stale price beats a fabricated zero.
func (uc *implUseCase) RefreshOne(ctx context.Context, id int64) (refresh.RefreshOneOutput, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RefreshOne GetItem: %v", err)
		return refresh.RefreshOneOutput{}, err
	}
	if item.ID == 0 {
		return refresh.RefreshOneOutput{}, refresh.ErrItemNotFound
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return refresh.RefreshOneOutput{}, err
	}

	price, err := uc.prices.Lookup(ctx, item.ItemLink)
	if err != nil {
		if errors.Is(err, steammarket.ErrUnavailable) {
			uc.l.Warnf(ctx, "uc.RefreshOne: price unavailable for %q, keeping last price: %v", item.ItemName, err)
			return refresh.RefreshOneOutput{}, refresh.ErrPriceUnavailable
		}
		uc.l.Errorf(ctx, "uc.RefreshOne Lookup: %v", err)
		return refresh.RefreshOneOutput{}, err
	}

	updated, err := uc.storePrice(ctx, item, price)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RefreshOne UpdateItemPrice: %v", err)
		return refresh.RefreshOneOutput{}, err
	}
	return refresh.RefreshOneOutput{Item: updated}, nil
}

// RefreshAll starts the bulk run. The returned channel is buffered for the
// whole run so the worker never blocks on a slow consumer.
func (uc *implUseCase) RefreshAll(ctx context.Context) (<-chan refresh.Progress, error) {
	uc.mu.Lock()
	if uc.status == refresh.StatusRunning {
		uc.mu.Unlock()
		return nil, refresh.ErrRefreshRunning
	}
	uc.status = refresh.StatusRunning
	uc.mu.Unlock()

	items, err := uc.repo.ListItems(ctx, repository.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RefreshAll ListItems: %v", err)
		uc.finish(refresh.StatusFailed, &refresh.RunSummary{StartedAt: time.Now(), FinishedAt: time.Now()})
		return nil, err
	}

	events := make(chan refresh.Progress, len(items))
	go uc.run(ctx, items, events)
	return events, nil
}

// Status reports the current run state and the last finished run.
func (uc *implUseCase) Status(ctx context.Context) (refresh.StatusOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := refresh.StatusOutput{Status: uc.status}
	if uc.lastRun != nil {
		last := *uc.lastRun
		out.LastRun = &last
	}
	return out, nil
}

// run processes items sequentially in ascending id order, one outstanding
// lookup at a time. limiter.Wait doubles as the cancellation point between
// records; records already processed stay persisted.
func (uc *implUseCase) run(ctx context.Context, items []model.InventoryItem, events chan<- refresh.Progress) {
	defer close(events)

	summary := &refresh.RunSummary{Total: len(items), StartedAt: time.Now()}
	final := refresh.StatusCompleted

	for i, item := range items {
		if err := uc.limiter.Wait(ctx); err != nil {
			uc.l.Warnf(ctx, "uc.RefreshAll: stopped after %d/%d records: %v", i, len(items), err)
			final = refresh.StatusFailed
			break
		}

		ev := refresh.Progress{
			Index:    i + 1,
			Total:    len(items),
			ItemID:   item.ID,
			ItemName: item.ItemName,
		}

		price, err := uc.prices.Lookup(ctx, item.ItemLink)
		if err != nil {
			summary.Failed++
			ev.Failed = true
			ev.Message = fmt.Sprintf("price unavailable for %s, keeping last price", item.ItemName)
			uc.l.Warnf(ctx, "uc.RefreshAll Lookup %q: %v", item.ItemName, err)
			events <- ev
			continue
		}

		if _, err := uc.storePrice(ctx, item, price); err != nil {
			summary.Failed++
			ev.Failed = true
			ev.Message = fmt.Sprintf("failed to store price for %s", item.ItemName)
			uc.l.Errorf(ctx, "uc.RefreshAll UpdateItemPrice %d: %v", item.ID, err)
			events <- ev
			continue
		}

		summary.Succeeded++
		ev.Message = fmt.Sprintf("updated %s to %s", item.ItemName, price.StringFixed(2))
		events <- ev
	}

	summary.FinishedAt = time.Now()
	uc.finish(final, summary)
}

func (uc *implUseCase) storePrice(ctx context.Context, item model.InventoryItem, price decimal.Decimal) (model.InventoryItem, error) {
	val := valuation.Recompute(item.CostPerItem, item.NumberOfItems, price)
	return uc.repo.UpdateItemPrice(ctx, repository.UpdatePriceOptions{
		ID:           item.ID,
		CurrentPrice: price,

		TotalCost:          val.TotalCost,
		TotalValue:         val.TotalValue,
		TotalReturnDollar:  val.TotalReturnDollar,
		TotalReturnPercent: val.TotalReturnPercent,
	})
}

func (uc *implUseCase) finish(status refresh.Status, summary *refresh.RunSummary) {
	uc.mu.Lock()
	uc.status = status
	uc.lastRun = summary
	uc.mu.Unlock()
}
