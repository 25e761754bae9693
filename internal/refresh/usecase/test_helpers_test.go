package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubRepo implements repository.Repository with overridable func fields.
type stubRepo struct {
	getFunc         func(id int64) (model.InventoryItem, error)
	listFunc        func(opt repo.ListItemsOptions) ([]model.InventoryItem, error)
	updatePriceFunc func(opt repo.UpdatePriceOptions) (model.InventoryItem, error)
}

func (s *stubRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}

func (s *stubRepo) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	if s.getFunc == nil {
		return model.InventoryItem{}, nil
	}
	return s.getFunc(id)
}

func (s *stubRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.InventoryItem, error) {
	if s.listFunc == nil {
		return nil, nil
	}
	return s.listFunc(opt)
}

func (s *stubRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}

func (s *stubRepo) UpdateItemPrice(ctx context.Context, opt repo.UpdatePriceOptions) (model.InventoryItem, error) {
	if s.updatePriceFunc == nil {
		return model.InventoryItem{}, nil
	}
	return s.updatePriceFunc(opt)
}

func (s *stubRepo) DeleteItem(ctx context.Context, id int64) error { return nil }

// stubSource implements steammarket.PriceSource via a func field.
type stubSource struct {
	lookupFunc func(ctx context.Context, itemLink string) (decimal.Decimal, error)
}

func (s *stubSource) Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error) {
	if s.lookupFunc == nil {
		return decimal.Zero, nil
	}
	return s.lookupFunc(ctx, itemLink)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
