package validator

import "errors"

// Sentinel errors shared across the application for non-field failures.
var (
	// ErrValidationFailed is returned when validation fails without a
	// specific field error attached.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDate is returned by date parsing helpers for values that do
	// not form a real calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
