package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get value")
	ErrFailedToSet    = errors.New("failed to set value")
	ErrFailedToDelete = errors.New("failed to delete value")
)
