package models

import "errors"

// Sentinel errors shared across the read and write paths. Handlers map
// these onto HTTP statuses; everything else is treated as a store
// failure.
var (
	// ErrNotFound indicates a category, district, or article id that
	// does not resolve against known data.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates input that violates a schema constraint.
	ErrValidation = errors.New("validation failed")
)
