package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert item")
	ErrFailedToGet    = errors.New("failed to get item")
	ErrFailedToList   = errors.New("failed to list items")
	ErrFailedToUpdate = errors.New("failed to update item")
	ErrFailedToDelete = errors.New("failed to delete item")
)
