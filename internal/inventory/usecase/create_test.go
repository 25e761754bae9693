package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"steaminvest/internal/inventory"
	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/inventory/usecase"
	"steaminvest/internal/model"
	"steaminvest/pkg/steammarket"
)

const testLink = "https://steamcommunity.com/market/listings/730/AK-47%20%7C%20Redline%20%28Field-Tested%29"

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var captured repo.CreateItemOptions
		r := &stubRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.InventoryItem, error) {
				captured = opt
				return model.InventoryItem{
					ID:            1,
					PurchaseDate:  opt.PurchaseDate,
					ItemName:      opt.ItemName,
					ItemLink:      opt.ItemLink,
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
		src := &stubSource{price: dec("5.00")}
		uc := usecase.New(r, src, &mockLogger{})

		out, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:      testLink,
			CostPerItem:   dec("10.00"),
			NumberOfItems: 2,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.PriceUnavailable {
			t.Error("expected price to be available")
		}
		if out.Item.ID != 1 {
			t.Errorf("expected id 1, got %d", out.Item.ID)
		}
		if captured.ItemName != "AK-47 | Redline (Field-Tested)" {
			t.Errorf("unexpected item name %q", captured.ItemName)
		}
		if captured.PurchaseDate != time.Now().Format(model.PurchaseDateFormat) {
			t.Errorf("unexpected purchase date %q", captured.PurchaseDate)
		}
		if !captured.TotalCost.Equal(dec("20.00")) {
			t.Errorf("expected total cost 20.00, got %s", captured.TotalCost)
		}
		if !captured.TotalValue.Equal(dec("10.00")) {
			t.Errorf("expected total value 10.00, got %s", captured.TotalValue)
		}
		if !captured.TotalReturnDollar.Equal(dec("-10.00")) {
			t.Errorf("expected return -10.00, got %s", captured.TotalReturnDollar)
		}
		if !captured.TotalReturnPercent.Equal(dec("-50.00")) {
			t.Errorf("expected return percent -50.00, got %s", captured.TotalReturnPercent)
		}
	})

	t.Run("Price Unavailable", func(t *testing.T) {
		var captured repo.CreateItemOptions
		r := &stubRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.InventoryItem, error) {
				captured = opt
				return model.InventoryItem{ID: 2, CurrentPrice: opt.CurrentPrice}, nil
			},
		}
		src := &stubSource{err: steammarket.ErrUnavailable}
		uc := usecase.New(r, src, &mockLogger{})

		out, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:      testLink,
			CostPerItem:   dec("10.00"),
			NumberOfItems: 2,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !out.PriceUnavailable {
			t.Error("expected PriceUnavailable to be set")
		}
		if !captured.CurrentPrice.IsZero() {
			t.Errorf("expected zero price, got %s", captured.CurrentPrice)
		}
		if !captured.TotalValue.IsZero() {
			t.Errorf("expected zero total value, got %s", captured.TotalValue)
		}
	})

	t.Run("Negative Cost", func(t *testing.T) {
		uc := usecase.New(&stubRepo{}, &stubSource{}, &mockLogger{})
		_, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:    testLink,
			CostPerItem: dec("-1"),
		})
		if !errors.Is(err, inventory.ErrNegativeCost) {
			t.Errorf("expected ErrNegativeCost, got %v", err)
		}
	})

	t.Run("Negative Quantity", func(t *testing.T) {
		uc := usecase.New(&stubRepo{}, &stubSource{}, &mockLogger{})
		_, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:      testLink,
			CostPerItem:   dec("1"),
			NumberOfItems: -3,
		})
		if !errors.Is(err, inventory.ErrNegativeQuantity) {
			t.Errorf("expected ErrNegativeQuantity, got %v", err)
		}
	})

	t.Run("Invalid Link", func(t *testing.T) {
		src := &stubSource{}
		uc := usecase.New(&stubRepo{}, src, &mockLogger{})
		_, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:      "https://example.com/not-a-listing",
			CostPerItem:   dec("1"),
			NumberOfItems: 1,
		})
		if !errors.Is(err, inventory.ErrInvalidLink) {
			t.Errorf("expected ErrInvalidLink, got %v", err)
		}
		if src.calls != 0 {
			t.Errorf("expected no lookup for invalid link, got %d", src.calls)
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		wantErr := errors.New("insert failed")
		r := &stubRepo{
			createFunc: func(opt repo.CreateItemOptions) (model.InventoryItem, error) {
				return model.InventoryItem{}, wantErr
			},
		}
		uc := usecase.New(r, &stubSource{price: decimal.Zero}, &mockLogger{})
		_, err := uc.Create(ctx, inventory.CreateItemInput{
			ItemLink:      testLink,
			CostPerItem:   dec("1"),
			NumberOfItems: 1,
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected repository error, got %v", err)
		}
	})
}
