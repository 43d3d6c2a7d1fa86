package repository

import (
	"context"
	"time"

	"publications-api/internal/domain/entity"
)

// PublicationFilter narrows a publication listing.
// Zero-valued fields apply no restriction; set fields are AND-combined.
type PublicationFilter struct {
	// PublishedAt, when set, keeps publications dated at or before it.
	PublishedAt *time.Time
	// After, when set, keeps publications dated strictly after it.
	After *time.Time
}

// PublicationStats holds publication counts split by derived state.
type PublicationStats struct {
	Scheduled int64
	Published int64
}

// PublicationRepository persists Publication records.
// Get returns (nil, nil) when the publication does not exist.
type PublicationRepository interface {
	Get(ctx context.Context, id int64) (*entity.Publication, error)
	List(ctx context.Context, filter PublicationFilter) ([]*entity.Publication, error)
	Create(ctx context.Context, pub *entity.Publication) error
	Update(ctx context.Context, pub *entity.Publication) error
	Delete(ctx context.Context, id int64) (*entity.Publication, error)
	CountByState(ctx context.Context, now time.Time) (PublicationStats, error)
}
