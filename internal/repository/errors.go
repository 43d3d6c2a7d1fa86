// Package repository declares the persistence contracts used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import "errors"

// Store-level signals that implementations must surface distinctly from
// ordinary failures, so use cases can translate them into domain errors.
var (
	// ErrForeignKeyViolation is returned when a write or delete breaks a
	// foreign key, e.g. deleting a Media still referenced by a Publication.
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")

	// ErrUniqueViolation is returned when an insert or update breaks a
	// unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrRowNotFound is returned by Update when no row has the given id,
	// e.g. because it was deleted after the caller read it.
	ErrRowNotFound = errors.New("row not found")
)
