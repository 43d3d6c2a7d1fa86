package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"publications-api/internal/domain/entity"
	"publications-api/internal/repository"
)

type PublicationRepo struct {
	db DBTX
	qb *PublicationQueryBuilder
}

func NewPublicationRepo(db DBTX) repository.PublicationRepository {
	return &PublicationRepo{db: db, qb: NewPublicationQueryBuilder()}
}

func (repo *PublicationRepo) Get(ctx context.Context, id int64) (*entity.Publication, error) {
	defer observe("select_publication", time.Now())
	const query = `
SELECT id, media_id, post_id, date
FROM publications
WHERE id = $1
LIMIT 1`
	var p entity.Publication
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.MediaID, &p.PostID, &p.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &p, nil
}

func (repo *PublicationRepo) List(ctx context.Context, filter repository.PublicationFilter) ([]*entity.Publication, error) {
	defer observe("list_publication", time.Now())
	where, args := repo.qb.BuildWhereClause(filter)
	query := `
SELECT id, media_id, post_id, date
FROM publications
` + where + `
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	list := make([]*entity.Publication, 0, 16)
	for rows.Next() {
		var p entity.Publication
		if err := rows.Scan(&p.ID, &p.MediaID, &p.PostID, &p.Date); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (repo *PublicationRepo) Create(ctx context.Context, p *entity.Publication) error {
	defer observe("insert_publication", time.Now())
	const query = `
INSERT INTO publications (media_id, post_id, date)
VALUES ($1, $2, $3)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, p.MediaID, p.PostID, p.Date).Scan(&p.ID); err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *PublicationRepo) Update(ctx context.Context, p *entity.Publication) error {
	defer observe("update_publication", time.Now())
	const query = `
UPDATE publications
SET media_id = $1, post_id = $2, date = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, p.MediaID, p.PostID, p.Date, p.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if err := expectOneRow(res); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *PublicationRepo) Delete(ctx context.Context, id int64) (*entity.Publication, error) {
	defer observe("delete_publication", time.Now())
	const query = `
DELETE FROM publications
WHERE id = $1
RETURNING id, media_id, post_id, date`
	var p entity.Publication
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.MediaID, &p.PostID, &p.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}
	return &p, nil
}

// CountByState splits publications into scheduled (date > now) and
// published (date <= now).
func (repo *PublicationRepo) CountByState(ctx context.Context, now time.Time) (repository.PublicationStats, error) {
	defer observe("count_publication_states", time.Now())
	const query = `
SELECT
  COUNT(*) FILTER (WHERE date > $1),
  COUNT(*) FILTER (WHERE date <= $1)
FROM publications`
	var stats repository.PublicationStats
	if err := repo.db.QueryRowContext(ctx, query, now).Scan(&stats.Scheduled, &stats.Published); err != nil {
		return repository.PublicationStats{}, fmt.Errorf("CountByState: %w", err)
	}
	return stats, nil
}
