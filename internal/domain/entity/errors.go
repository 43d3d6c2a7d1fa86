package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
// Use case errors wrap one of these kinds so the HTTP boundary can classify
// them with errors.Is without knowing every entity.
var (
	// ErrNotFound indicates that a requested entity or a referenced entity was not found
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates that the write would break a uniqueness rule
	ErrConflict = errors.New("already exists")

	// ErrForbidden indicates that the operation is not allowed in the current state
	ErrForbidden = errors.New("forbidden")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
