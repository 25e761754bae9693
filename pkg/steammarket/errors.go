package steammarket

import "errors"

// ErrUnavailable is returned whenever a current price cannot be resolved:
// network failure, timeout, non-200 status, or a malformed response body.
// Callers only need to know the lookup did not produce a price.
var ErrUnavailable = errors.New("price unavailable")

// ErrInvalidLink is returned when an item link is not a market listing URL.
var ErrInvalidLink = errors.New("invalid market listing link")
