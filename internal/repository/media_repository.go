package repository

import (
	"context"

	"publications-api/internal/domain/entity"
)

// MediaRepository persists Media records.
// Get and FindByTitleAndUsername return (nil, nil) when nothing matches.
type MediaRepository interface {
	Get(ctx context.Context, id int64) (*entity.Media, error)
	List(ctx context.Context) ([]*entity.Media, error)
	FindByTitleAndUsername(ctx context.Context, title, username string) (*entity.Media, error)
	Create(ctx context.Context, media *entity.Media) error
	Update(ctx context.Context, media *entity.Media) error
	Delete(ctx context.Context, id int64) (*entity.Media, error)
}
