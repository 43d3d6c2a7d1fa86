package media

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

// CreateInput represents the input parameters for creating a new media.
type CreateInput struct {
	Title    string
	Username string
}

// UpdateInput represents the input parameters for replacing an existing media.
type UpdateInput struct {
	ID       int64
	Title    string
	Username string
}

// Service provides media management use cases.
// It handles business logic for media operations and delegates persistence to the repository.
type Service struct {
	Repo repository.MediaRepository
}

// List retrieves all media from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Media, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return list, nil
}

// Get retrieves a single media by its ID.
// Returns ErrMediaNotFound if the media does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Media, error) {
	m, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	if m == nil {
		return nil, ErrMediaNotFound
	}
	return m, nil
}

// Create stores a new media.
// Returns ErrDuplicateMedia if the (title, username) pair is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Media, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "media.Create")
	defer span.End()

	if err := s.ensureUnique(ctx, in.Title, in.Username); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	m := &entity.Media{Title: in.Title, Username: in.Username}
	if err := s.Repo.Create(ctx, m); err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrUniqueViolation) {
			metrics.RecordGuardRejection("media", "conflict")
			return nil, ErrDuplicateMedia
		}
		return nil, fmt.Errorf("create media: %w", err)
	}
	metrics.RecordEntityCreated("media")
	return m, nil
}

// Update replaces title and username of an existing media.
// The uniqueness check runs first and matches any media carrying the pair,
// including the target itself.
// Returns ErrDuplicateMedia or ErrMediaNotFound.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Media, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "media.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("media_id", in.ID))

	if err := s.ensureUnique(ctx, in.Title, in.Username); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	m, err := s.Get(ctx, in.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	m.Title = in.Title
	m.Username = in.Username

	if err := s.Repo.Update(ctx, m); err != nil {
		span.SetStatus(codes.Error, err.Error())
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			metrics.RecordGuardRejection("media", "conflict")
			return nil, ErrDuplicateMedia
		case errors.Is(err, repository.ErrRowNotFound):
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("update media: %w", err)
	}
	return m, nil
}

// Delete removes a media and returns the deleted record.
// Returns ErrMediaNotFound if it does not exist and ErrMediaInUse if a
// publication still references it.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.Media, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "media.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("media_id", id))

	if _, err := s.Get(ctx, id); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	m, err := s.Repo.Delete(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			logging.FromContext(ctx).Info("media delete blocked by publications",
				slog.Int64("media_id", id))
			metrics.RecordGuardRejection("media", "forbidden")
			return nil, ErrMediaInUse
		}
		return nil, fmt.Errorf("delete media: %w", err)
	}
	if m == nil {
		return nil, ErrMediaNotFound
	}
	return m, nil
}

func (s *Service) ensureUnique(ctx context.Context, title, username string) error {
	existing, err := s.Repo.FindByTitleAndUsername(ctx, title, username)
	if err != nil {
		return fmt.Errorf("find media by title and username: %w", err)
	}
	if existing != nil {
		logging.FromContext(ctx).Info("duplicate media rejected",
			slog.Int64("existing_id", existing.ID))
		metrics.RecordGuardRejection("media", "conflict")
		return ErrDuplicateMedia
	}
	return nil
}
