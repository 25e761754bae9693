package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"steaminvest/internal/valuation"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecompute(t *testing.T) {
	cases := []struct {
		name          string
		costPerItem   string
		numberOfItems int64
		currentPrice  string

		totalCost          string
		totalValue         string
		totalReturnDollar  string
		totalReturnPercent string
	}{
		{
			name:        "losing position",
			costPerItem: "10", numberOfItems: 2, currentPrice: "5",
			totalCost: "20.00", totalValue: "10.00",
			totalReturnDollar: "-10.00", totalReturnPercent: "-50.00",
		},
		{
			name:        "winning position",
			costPerItem: "1.25", numberOfItems: 4, currentPrice: "2.50",
			totalCost: "5.00", totalValue: "10.00",
			totalReturnDollar: "5.00", totalReturnPercent: "100.00",
		},
		{
			name:        "rounding half away from zero",
			costPerItem: "0.335", numberOfItems: 1, currentPrice: "0.445",
			totalCost: "0.34", totalValue: "0.45",
			totalReturnDollar: "0.11", totalReturnPercent: "32.35",
		},
		{
			name:        "zero cost yields zero percent",
			costPerItem: "0", numberOfItems: 10, currentPrice: "3.33",
			totalCost: "0.00", totalValue: "33.30",
			totalReturnDollar: "33.30", totalReturnPercent: "0",
		},
		{
			name:        "zero quantity yields zero everything",
			costPerItem: "12.50", numberOfItems: 0, currentPrice: "99.99",
			totalCost: "0.00", totalValue: "0.00",
			totalReturnDollar: "0.00", totalReturnPercent: "0",
		},
		{
			name:        "break even",
			costPerItem: "7.77", numberOfItems: 3, currentPrice: "7.77",
			totalCost: "23.31", totalValue: "23.31",
			totalReturnDollar: "0.00", totalReturnPercent: "0.00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := valuation.Recompute(dec(tc.costPerItem), tc.numberOfItems, dec(tc.currentPrice))

			if !got.TotalCost.Equal(dec(tc.totalCost)) {
				t.Errorf("TotalCost = %s, want %s", got.TotalCost, tc.totalCost)
			}
			if !got.TotalValue.Equal(dec(tc.totalValue)) {
				t.Errorf("TotalValue = %s, want %s", got.TotalValue, tc.totalValue)
			}
			if !got.TotalReturnDollar.Equal(dec(tc.totalReturnDollar)) {
				t.Errorf("TotalReturnDollar = %s, want %s", got.TotalReturnDollar, tc.totalReturnDollar)
			}
			if !got.TotalReturnPercent.Equal(dec(tc.totalReturnPercent)) {
				t.Errorf("TotalReturnPercent = %s, want %s", got.TotalReturnPercent, tc.totalReturnPercent)
			}
		})
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	cost, qty, price := dec("3.14"), int64(7), dec("2.71")

	first := valuation.Recompute(cost, qty, price)
	second := valuation.Recompute(cost, qty, price)

	if !first.TotalCost.Equal(second.TotalCost) ||
		!first.TotalValue.Equal(second.TotalValue) ||
		!first.TotalReturnDollar.Equal(second.TotalReturnDollar) ||
		!first.TotalReturnPercent.Equal(second.TotalReturnPercent) {
		t.Errorf("recompute is not idempotent: %+v vs %+v", first, second)
	}
}
