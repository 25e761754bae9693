package steammarket

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceSource resolves the current market price for an item link.
// Implementations collapse every failure mode into ErrUnavailable.
type PriceSource interface {
	Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error)
}
