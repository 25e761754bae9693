package inventory

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrNegativeCost     = errors.New("cost per item must not be negative")
	ErrNegativeQuantity = errors.New("number of items must not be negative")
	ErrInvalidDate      = errors.New("invalid purchase date format, use MM/DD/YYYY")
	ErrInvalidLink      = errors.New("item link is not a market listing URL")
)
