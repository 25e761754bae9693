package http

import (
	"steaminvest/internal/inventory"
	pkgErrors "steaminvest/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case inventory.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case inventory.ErrNegativeCost:
		return pkgErrors.NewHTTPError(400, "cost per item must not be negative")
	case inventory.ErrNegativeQuantity:
		return pkgErrors.NewHTTPError(400, "number of items must not be negative")
	case inventory.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "purchase date must be MM/DD/YYYY")
	case inventory.ErrInvalidLink:
		return pkgErrors.NewHTTPError(400, "item link is not a market listing URL")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
