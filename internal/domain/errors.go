package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTransaction marks a booking submission whose transaction
	// hash is already recorded. Reported as a conflict, never merged.
	ErrDuplicateTransaction = errors.New("transaction already recorded")

	// ErrInsufficientStock is raised inside the booking transaction when a
	// conditional stock decrement touches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError carries the human-readable message for a rejected input
// field. The HTTP layer maps it to a 400 response verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(msg string) error { return &ValidationError{Message: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
