// Package media provides use cases for managing media outlets.
// It enforces the (title, username) uniqueness rule and blocks deletion of
// media that are still referenced by publications.
package media

import (
	"fmt"

	"publications-api/internal/domain/entity"
)

// Sentinel errors for media use case operations.
var (
	// ErrMediaNotFound indicates that the requested media was not found.
	ErrMediaNotFound = fmt.Errorf("media %w", entity.ErrNotFound)

	// ErrDuplicateMedia indicates that a media with the same title and username already exists.
	ErrDuplicateMedia = fmt.Errorf("media with this title and username %w", entity.ErrConflict)

	// ErrMediaInUse indicates that the media is still referenced by at least one publication.
	ErrMediaInUse = fmt.Errorf("%w: media is referenced by publications", entity.ErrForbidden)
)
