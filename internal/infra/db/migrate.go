package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the schema. Every statement is idempotent.
// Keys are BIGINT so that any positive int64 id can be bound as a parameter.
// Referential integrity and media identity uniqueness are enforced here as
// the last line of defence behind the service-level checks.
func MigrateUp(db *sql.DB) error {
	tables := []struct {
		name string
		ddl  string
	}{
		{"medias", `
CREATE TABLE IF NOT EXISTS medias (
    id       BIGSERIAL PRIMARY KEY,
    title    TEXT NOT NULL,
    username TEXT NOT NULL,
    CONSTRAINT medias_title_username_key UNIQUE (title, username)
)`},
		{"posts", `
CREATE TABLE IF NOT EXISTS posts (
    id    BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    text  TEXT NOT NULL,
    image TEXT
)`},
		{"publications", `
CREATE TABLE IF NOT EXISTS publications (
    id       BIGSERIAL PRIMARY KEY,
    media_id BIGINT NOT NULL REFERENCES medias(id),
    post_id  BIGINT NOT NULL REFERENCES posts(id),
    date     TIMESTAMPTZ NOT NULL
)`},
	}
	for _, tbl := range tables {
		if _, err := db.Exec(tbl.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", tbl.name, err)
		}
	}

	indexes := []string{
		// published / after filters
		`CREATE INDEX IF NOT EXISTS idx_publications_date ON publications(date)`,
		// FK lookups on media/post delete
		`CREATE INDEX IF NOT EXISTS idx_publications_media_id ON publications(media_id)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_post_id ON publications(post_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
