package usecase_test

import (
	"context"
	"errors"
	"testing"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/inventory/usecase"
	"steaminvest/internal/model"
)

func storedItem() model.InventoryItem {
	return model.InventoryItem{
		ID:            7,
		PurchaseDate:  "03/09/2024",
		ItemName:      "AK-47 | Redline (Field-Tested)",
		ItemLink:      testLink,
		CostPerItem:   dec("10.00"),
		NumberOfItems: 2,
		CurrentPrice:  dec("5.00"),

		TotalCost:          dec("20.00"),
		TotalValue:         dec("10.00"),
		TotalReturnDollar:  dec("-10.00"),
		TotalReturnPercent: dec("-50.00"),
	}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		r := &stubRepo{
			getFunc: func(id int64) (model.InventoryItem, error) { return storedItem(), nil },
		}
		uc := usecase.New(r, &stubSource{}, &mockLogger{})
		out, err := uc.Detail(ctx, 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Item.ItemName != "AK-47 | Redline (Field-Tested)" {
			t.Errorf("unexpected item name %q", out.Item.ItemName)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&stubRepo{}, &stubSource{}, &mockLogger{})
		_, err := uc.Detail(ctx, 99)
		if !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	echoUpdate := func(captured *repo.UpdateItemOptions) *stubRepo {
		return &stubRepo{
			getFunc: func(id int64) (model.InventoryItem, error) { return storedItem(), nil },
			updateFunc: func(opt repo.UpdateItemOptions) (model.InventoryItem, error) {
				*captured = opt
				return model.InventoryItem{
					ID:            opt.ID,
					PurchaseDate:  opt.PurchaseDate,
					ItemName:      opt.ItemName,
					ItemLink:      testLink,
					CostPerItem:   opt.CostPerItem,
					NumberOfItems: opt.NumberOfItems,
					CurrentPrice:  opt.CurrentPrice,

					TotalCost:          opt.TotalCost,
					TotalValue:         opt.TotalValue,
					TotalReturnDollar:  opt.TotalReturnDollar,
					TotalReturnPercent: opt.TotalReturnPercent,
				}, nil
			},
		}
	}

	t.Run("Quantity Change Recomputes Valuation", func(t *testing.T) {
		var captured repo.UpdateItemOptions
		uc := usecase.New(echoUpdate(&captured), &stubSource{}, &mockLogger{})

		qty := int64(4)
		out, err := uc.Update(ctx, inventory.UpdateItemInput{ID: 7, NumberOfItems: &qty})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Item.NumberOfItems != 4 {
			t.Errorf("expected quantity 4, got %d", out.Item.NumberOfItems)
		}
		if !captured.TotalCost.Equal(dec("40.00")) {
			t.Errorf("expected total cost 40.00, got %s", captured.TotalCost)
		}
		if !captured.TotalValue.Equal(dec("20.00")) {
			t.Errorf("expected total value 20.00, got %s", captured.TotalValue)
		}
		if !captured.TotalReturnDollar.Equal(dec("-20.00")) {
			t.Errorf("expected return -20.00, got %s", captured.TotalReturnDollar)
		}
	})

	t.Run("Empty Payload Keeps Fields", func(t *testing.T) {
		var captured repo.UpdateItemOptions
		uc := usecase.New(echoUpdate(&captured), &stubSource{}, &mockLogger{})

		out, err := uc.Update(ctx, inventory.UpdateItemInput{ID: 7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := storedItem()
		if out.Item.ItemName != want.ItemName ||
			out.Item.PurchaseDate != want.PurchaseDate ||
			out.Item.NumberOfItems != want.NumberOfItems ||
			!out.Item.CostPerItem.Equal(want.CostPerItem) ||
			!out.Item.CurrentPrice.Equal(want.CurrentPrice) {
			t.Errorf("expected stored fields unchanged, got %+v", out.Item)
		}
		if !captured.TotalReturnPercent.Equal(dec("-50.00")) {
			t.Errorf("expected return percent -50.00, got %s", captured.TotalReturnPercent)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		var captured repo.UpdateItemOptions
		uc := usecase.New(echoUpdate(&captured), &stubSource{}, &mockLogger{})

		bad := "13/40/2024"
		_, err := uc.Update(ctx, inventory.UpdateItemInput{ID: 7, PurchaseDate: &bad})
		if !errors.Is(err, inventory.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Negative Cost", func(t *testing.T) {
		var captured repo.UpdateItemOptions
		uc := usecase.New(echoUpdate(&captured), &stubSource{}, &mockLogger{})

		cost := dec("-5")
		_, err := uc.Update(ctx, inventory.UpdateItemInput{ID: 7, CostPerItem: &cost})
		if !errors.Is(err, inventory.ErrNegativeCost) {
			t.Errorf("expected ErrNegativeCost, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&stubRepo{}, &stubSource{}, &mockLogger{})
		_, err := uc.Update(ctx, inventory.UpdateItemInput{ID: 99})
		if !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Returns Removed Record", func(t *testing.T) {
		deleted := int64(0)
		r := &stubRepo{
			getFunc: func(id int64) (model.InventoryItem, error) { return storedItem(), nil },
			deleteFunc: func(id int64) error {
				deleted = id
				return nil
			},
		}
		uc := usecase.New(r, &stubSource{}, &mockLogger{})
		out, err := uc.Delete(ctx, 7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if deleted != 7 {
			t.Errorf("expected delete of id 7, got %d", deleted)
		}
		if out.Item.ID != 7 {
			t.Errorf("expected removed record, got %+v", out.Item)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&stubRepo{}, &stubSource{}, &mockLogger{})
		_, err := uc.Delete(ctx, 99)
		if !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
