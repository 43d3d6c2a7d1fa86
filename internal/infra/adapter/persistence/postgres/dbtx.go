// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"publications-api/internal/observability/metrics"
	"publications-api/internal/repository"
)

// DBTX is the subset of *sql.DB the repositories need.
// It is satisfied by *sql.DB and by circuitbreaker.DBCircuitBreaker.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// SQLSTATE codes surfaced as repository signals.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps integrity constraint violations to repository sentinels.
// The driver error stays in the chain.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", repository.ErrForeignKeyViolation, err)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", repository.ErrUniqueViolation, err)
	default:
		return err
	}
}

// expectOneRow reports ErrRowNotFound when an UPDATE matched nothing.
func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrRowNotFound
	}
	return nil
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
