package publication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"publications-api/internal/domain/entity"
	"publications-api/internal/observability/logging"
	"publications-api/internal/observability/metrics"
	"publications-api/internal/observability/tracing"
	"publications-api/internal/repository"
)

// MediaGetter resolves a media by id and fails with a not-found error when absent.
// It is satisfied by *media.Service.
type MediaGetter interface {
	Get(ctx context.Context, id int64) (*entity.Media, error)
}

// PostGetter resolves a post by id and fails with a not-found error when absent.
// It is satisfied by *post.Service.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*entity.Post, error)
}

// CreateInput represents the input parameters for scheduling a publication.
type CreateInput struct {
	MediaID int64
	PostID  int64
	Date    time.Time
}

// UpdateInput represents the input parameters for rescheduling a publication.
type UpdateInput struct {
	ID      int64
	MediaID int64
	PostID  int64
	Date    time.Time
}

// ListInput selects publications. Published keeps those dated at or before
// now; After keeps those dated strictly after the given instant.
type ListInput struct {
	Published bool
	After     *time.Time
}

// Service provides publication lifecycle use cases.
// Media and Posts are consulted before every write; Now defaults to time.Now.
type Service struct {
	Repo  repository.PublicationRepository
	Media MediaGetter
	Posts PostGetter
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List retrieves the publications matching in.
func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.Publication, error) {
	var filter repository.PublicationFilter
	if in.Published {
		now := s.now()
		filter.PublishedAt = &now
	}
	filter.After = in.After

	list, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return list, nil
}

// Get retrieves a single publication by its ID.
// Returns ErrPublicationNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Publication, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", err)
	}
	if p == nil {
		return nil, ErrPublicationNotFound
	}
	return p, nil
}

// Create schedules a post on a media.
// The media and the post must both exist; their not-found errors are returned
// unchanged and nothing is written.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Publication, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "publication.Create")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("media_id", in.MediaID),
		attribute.Int64("post_id", in.PostID),
	)

	if err := s.checkReferences(ctx, in.MediaID, in.PostID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	p := &entity.Publication{MediaID: in.MediaID, PostID: in.PostID, Date: in.Date}
	if err := s.Repo.Create(ctx, p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("create publication: %w", err)
	}
	metrics.RecordEntityCreated("publication")
	return p, nil
}

// Update reschedules a publication.
// A publication whose stored date has already passed is immutable and yields
// ErrAlreadyPublished, whatever the new values are.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Publication, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "publication.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("publication_id", in.ID))

	p, err := s.Get(ctx, in.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if entity.IsPublished(p, s.now()) {
		logging.FromContext(ctx).Info("update of published publication rejected",
			slog.Int64("publication_id", p.ID),
			slog.Time("date", p.Date))
		metrics.RecordGuardRejection("publication", "forbidden")
		span.SetStatus(codes.Error, ErrAlreadyPublished.Error())
		return nil, ErrAlreadyPublished
	}

	if err := s.checkReferences(ctx, in.MediaID, in.PostID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	p.MediaID = in.MediaID
	p.PostID = in.PostID
	p.Date = in.Date
	if err := s.Repo.Update(ctx, p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		switch {
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrReferenceNotFound
		case errors.Is(err, repository.ErrRowNotFound):
			return nil, ErrPublicationNotFound
		}
		return nil, fmt.Errorf("update publication: %w", err)
	}
	return p, nil
}

// Delete removes a publication regardless of its state.
// Returns ErrPublicationNotFound if it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.Publication, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	p, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete publication: %w", err)
	}
	if p == nil {
		return nil, ErrPublicationNotFound
	}
	return p, nil
}

// Stats counts scheduled and published publications at the current time.
func (s *Service) Stats(ctx context.Context) (repository.PublicationStats, error) {
	stats, err := s.Repo.CountByState(ctx, s.now())
	if err != nil {
		return repository.PublicationStats{}, fmt.Errorf("count publications: %w", err)
	}
	return stats, nil
}

func (s *Service) checkReferences(ctx context.Context, mediaID, postID int64) error {
	if _, err := s.Media.Get(ctx, mediaID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.RecordGuardRejection("publication", "missing_media")
		}
		return err
	}
	if _, err := s.Posts.Get(ctx, postID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.RecordGuardRejection("publication", "missing_post")
		}
		return err
	}
	return nil
}
