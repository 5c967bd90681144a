package services

import "errors"

// Common service-level errors
var (
	// ErrValidation is returned when user input is rejected before touching the store.
	ErrValidation = errors.New("validation failed")
)
