package repository

import "errors"

var (
	// ErrNotFound is returned by lookups that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate surfaces a store-level uniqueness violation. The
	// registration pre-check is race-prone; this is the authoritative signal.
	ErrDuplicate = errors.New("duplicate record")
)
