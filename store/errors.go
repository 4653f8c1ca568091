package store

import "errors"

// Error Handling Guidelines:
// - Stores: return the sentinel errors below, wrapped with fmt.Errorf("context: %w", err)
// - Models/Handlers: translate them into apperrors.* values

var (
	// ErrNotFound indicates that a requested record was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a uniqueness violation, e.g. a duplicate newsletter email.
	ErrConflict = errors.New("conflict")
)
