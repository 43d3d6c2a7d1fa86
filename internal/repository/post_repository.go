package repository

import (
	"context"

	"publications-api/internal/domain/entity"
)

// PostRepository persists Post records.
// Get returns (nil, nil) when the post does not exist.
type PostRepository interface {
	Get(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id int64) (*entity.Post, error)
}
