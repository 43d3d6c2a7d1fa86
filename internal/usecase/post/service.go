package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"publications-api/internal/domain/entity"
	"publications-api/internal/observability/logging"
	"publications-api/internal/observability/metrics"
	"publications-api/internal/observability/tracing"
	"publications-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new post.
// A nil Image leaves the post without an image.
type CreateInput struct {
	Title string
	Text  string
	Image *string
}

// UpdateInput represents the input parameters for replacing an existing post.
type UpdateInput struct {
	ID    int64
	Title string
	Text  string
	Image *string
}

// Service provides post management use cases.
type Service struct {
	Repo repository.PostRepository
}

// List retrieves all posts from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Post, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

// Get retrieves a single post by its ID.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create stores a new post. Posts carry no uniqueness rule.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	p := &entity.Post{Title: in.Title, Text: in.Text, Image: in.Image}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	metrics.RecordEntityCreated("post")
	return p, nil
}

// Update replaces the fields of an existing post.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "post.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", in.ID))

	p, err := s.Get(ctx, in.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	p.Title = in.Title
	p.Text = in.Text
	p.Image = in.Image
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// Delete removes a post and returns the deleted record.
// Returns ErrPostNotFound, or ErrPostInUse when a publication references it.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "post.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("post_id", id))

	if _, err := s.Get(ctx, id); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	p, err := s.Repo.Delete(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			logging.FromContext(ctx).Info("post delete blocked by publications",
				slog.Int64("post_id", id))
			metrics.RecordGuardRejection("post", "forbidden")
			return nil, ErrPostInUse
		}
		return nil, fmt.Errorf("delete post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}
