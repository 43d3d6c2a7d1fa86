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

type MediaRepo struct{ db DBTX }

func NewMediaRepo(db DBTX) repository.MediaRepository {
	return &MediaRepo{db: db}
}

func (repo *MediaRepo) Get(ctx context.Context, id int64) (*entity.Media, error) {
	defer observe("select_media", time.Now())
	const query = `
SELECT id, title, username
FROM medias
WHERE id = $1
LIMIT 1`
	var m entity.Media
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &m, nil
}

func (repo *MediaRepo) List(ctx context.Context) ([]*entity.Media, error) {
	defer observe("list_media", time.Now())
	const query = `
SELECT id, title, username
FROM medias
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	list := make([]*entity.Media, 0, 16)
	for rows.Next() {
		var m entity.Media
		if err := rows.Scan(&m.ID, &m.Title, &m.Username); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (repo *MediaRepo) FindByTitleAndUsername(ctx context.Context, title, username string) (*entity.Media, error) {
	defer observe("select_media_by_identity", time.Now())
	const query = `
SELECT id, title, username
FROM medias
WHERE title = $1 AND username = $2
LIMIT 1`
	var m entity.Media
	err := repo.db.QueryRowContext(ctx, query, title, username).Scan(&m.ID, &m.Title, &m.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByTitleAndUsername: %w", err)
	}
	return &m, nil
}

func (repo *MediaRepo) Create(ctx context.Context, m *entity.Media) error {
	defer observe("insert_media", time.Now())
	const query = `
INSERT INTO medias (title, username)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, m.Title, m.Username).Scan(&m.ID); err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *MediaRepo) Update(ctx context.Context, m *entity.Media) error {
	defer observe("update_media", time.Now())
	const query = `
UPDATE medias
SET title = $1, username = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, m.Title, m.Username, m.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if err := expectOneRow(res); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// Delete removes the media and returns the deleted row, or nil when absent.
// A media still referenced by a publication yields ErrForeignKeyViolation.
func (repo *MediaRepo) Delete(ctx context.Context, id int64) (*entity.Media, error) {
	defer observe("delete_media", time.Now())
	const query = `
DELETE FROM medias
WHERE id = $1
RETURNING id, title, username`
	var m entity.Media
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", translateError(err))
	}
	return &m, nil
}
