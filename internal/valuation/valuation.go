// Package valuation derives the computed money fields of an inventory item
// from its raw fields. All arithmetic is decimal; results are rounded to
// 2 fractional digits with round-half-away-from-zero (decimal.Round). The
// same policy applies on create, update and price refresh.
package valuation

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept on every derived field.
const Scale = 2

// Valuation holds the four derived fields of an inventory item.
type Valuation struct {
	TotalCost          decimal.Decimal
	TotalValue         decimal.Decimal
	TotalReturnDollar  decimal.Decimal
	TotalReturnPercent decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Recompute derives the valuation from the raw fields. It is pure: no side
// effects, identical inputs always yield identical outputs.
//
// TotalReturnPercent is defined as exactly 0 when TotalCost is 0. This is a
// deliberate policy (not "undefined") so a giveaway position reports a flat
// return instead of dividing by zero.
func Recompute(costPerItem decimal.Decimal, numberOfItems int64, currentPrice decimal.Decimal) Valuation {
	qty := decimal.NewFromInt(numberOfItems)

	totalCost := costPerItem.Mul(qty).Round(Scale)
	totalValue := currentPrice.Mul(qty).Round(Scale)
	totalReturnDollar := totalValue.Sub(totalCost).Round(Scale)

	totalReturnPercent := decimal.Zero
	if !totalCost.IsZero() {
		totalReturnPercent = totalReturnDollar.Div(totalCost).Mul(hundred).Round(Scale)
	}

	return Valuation{
		TotalCost:          totalCost,
		TotalValue:         totalValue,
		TotalReturnDollar:  totalReturnDollar,
		TotalReturnPercent: totalReturnPercent,
	}
}
