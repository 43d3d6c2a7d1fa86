// Package post provides use cases for managing posts.
package post

import (
	"fmt"

	"publications-api/internal/domain/entity"
)

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that the requested post was not found.
	ErrPostNotFound = fmt.Errorf("post %w", entity.ErrNotFound)

	// ErrPostInUse indicates that the post is still referenced by at least one publication.
	ErrPostInUse = fmt.Errorf("%w: post is referenced by publications", entity.ErrForbidden)
)
