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

type PostRepo struct{ db DBTX }

func NewPostRepo(db DBTX) repository.PostRepository {
	return &PostRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads id, title, text, image; a NULL image becomes a nil pointer.
func scanPost(s rowScanner) (*entity.Post, error) {
	var (
		p     entity.Post
		image sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Text, &image); err != nil {
		return nil, err
	}
	if image.Valid {
		p.Image = &image.String
	}
	return &p, nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	defer observe("select_post", time.Now())
	const query = `
SELECT id, title, text, image
FROM posts
WHERE id = $1
LIMIT 1`
	p, err := scanPost(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *PostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	defer observe("list_post", time.Now())
	const query = `
SELECT id, title, text, image
FROM posts
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 16)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (repo *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	defer observe("insert_post", time.Now())
	const query = `
INSERT INTO posts (title, text, image)
VALUES ($1, $2, $3)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, p.Title, p.Text, nullString(p.Image)).Scan(&p.ID); err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	defer observe("update_post", time.Now())
	const query = `
UPDATE posts
SET title = $1, text = $2, image = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, p.Title, p.Text, nullString(p.Image), p.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	if err := expectOneRow(res); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// Delete removes the post and returns the deleted row, or nil when absent.
// A post still referenced by a publication yields ErrForeignKeyViolation.
func (repo *PostRepo) Delete(ctx context.Context, id int64) (*entity.Post, error) {
	defer observe("delete_post", time.Now())
	const query = `
DELETE FROM posts
WHERE id = $1
RETURNING id, title, text, image`
	p, err := scanPost(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", translateError(err))
	}
	return p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
