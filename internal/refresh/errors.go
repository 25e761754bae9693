package refresh

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrPriceUnavailable = errors.New("market price unavailable")
	ErrRefreshRunning   = errors.New("a refresh run is already in progress")
)
