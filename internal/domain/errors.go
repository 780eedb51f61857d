package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSale is returned when a client transaction id was already synced
	ErrDuplicateSale = errors.New("sale already synced")

	// ErrDuplicateStore is returned when the store code or username is taken
	ErrDuplicateStore = errors.New("store code or username already exists")
)
