// Package publication provides the publication lifecycle use cases.
// A publication links one media to one post at a date. It can be changed only
// while that date lies in the future; afterwards it is published and frozen.
package publication

import (
	"fmt"

	"publications-api/internal/domain/entity"
)

// Sentinel errors for publication use case operations.
var (
	// ErrPublicationNotFound indicates that the requested publication was not found.
	ErrPublicationNotFound = fmt.Errorf("publication %w", entity.ErrNotFound)

	// ErrAlreadyPublished indicates an update of a publication whose date has passed.
	ErrAlreadyPublished = fmt.Errorf("%w: publication is already published and cannot be modified", entity.ErrForbidden)

	// ErrReferenceNotFound is returned when the store rejects a write because
	// the referenced media or post disappeared after it was checked.
	ErrReferenceNotFound = fmt.Errorf("referenced media or post %w", entity.ErrNotFound)
)
