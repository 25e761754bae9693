package http

import (
	"steaminvest/internal/refresh"
	pkgErrors "steaminvest/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case refresh.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case refresh.ErrPriceUnavailable:
		return pkgErrors.NewHTTPError(502, "market price unavailable, stored price unchanged")
	case refresh.ErrRefreshRunning:
		return pkgErrors.NewHTTPError(409, "a refresh run is already in progress")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
