package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"publications-api/internal/domain/entity"
	"publications-api/internal/infra/adapter/persistence/postgres"
	"publications-api/internal/repository"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

func mediaRows(list ...*entity.Media) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "username"})
	for _, m := range list {
		rows.AddRow(m.ID, m.Title, m.Username)
	}
	return rows
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

/* ──────────────────────────────── 1. Get ──────────────────────────────── */

func TestMediaRepo_Get(t *testing.T) {
	db, mock := newMock(t)
	want := &entity.Media{ID: 1, Title: "a", Username: "b"}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM medias`)).
		WithArgs(int64(1)).
		WillReturnRows(mediaRows(want))

	got, err := postgres.NewMediaRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMediaRepo_Get_notFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM medias`).WithArgs(int64(9)).WillReturnRows(mediaRows())

	got, err := postgres.NewMediaRepo(db).Get(context.Background(), 9)
	if err != nil || got != nil {
		t.Fatalf("want nil, nil; got %v, %v", got, err)
	}
}

/* ──────────────────────────────── 2. List ──────────────────────────────── */

func TestMediaRepo_List(t *testing.T) {
	db, mock := newMock(t)
	want := []*entity.Media{
		{ID: 1, Title: "a", Username: "b"},
		{ID: 2, Title: "c", Username: "d"},
	}
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY id ASC`)).WillReturnRows(mediaRows(want...))

	got, err := postgres.NewMediaRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMediaRepo_List_empty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM medias`).WillReturnRows(mediaRows())

	got, err := postgres.NewMediaRepo(db).List(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v err=%v", got, err)
	}
}

/* ──────────────────────── 3. FindByTitleAndUsername ─────────────────────── */

func TestMediaRepo_FindByTitleAndUsername(t *testing.T) {
	db, mock := newMock(t)
	want := &entity.Media{ID: 3, Title: "a", Username: "b"}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title = $1 AND username = $2`)).
		WithArgs("a", "b").
		WillReturnRows(mediaRows(want))

	got, err := postgres.NewMediaRepo(db).FindByTitleAndUsername(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 4. Create ──────────────────────────────── */

func TestMediaRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO medias`)).
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	m := &entity.Media{Title: "a", Username: "b"}
	if err := postgres.NewMediaRepo(db).Create(context.Background(), m); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if m.ID != 5 {
		t.Fatalf("want id 5, got %d", m.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMediaRepo_Create_uniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO medias`).
		WithArgs("a", "b").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "medias_title_username_key"})

	err := postgres.NewMediaRepo(db).Create(context.Background(), &entity.Media{Title: "a", Username: "b"})
	if !errors.Is(err, repository.ErrUniqueViolation) {
		t.Fatalf("want ErrUniqueViolation, got %v", err)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatal("driver error should stay in the chain")
	}
}

/* ──────────────────────────────── 5. Update ──────────────────────────────── */

func TestMediaRepo_Update(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE medias`)).
		WithArgs("x", "y", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewMediaRepo(db).Update(context.Background(), &entity.Media{ID: 1, Title: "x", Username: "y"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMediaRepo_Update_missingRow(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE medias`)).
		WithArgs("x", "y", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := postgres.NewMediaRepo(db).Update(context.Background(), &entity.Media{ID: 9, Title: "x", Username: "y"})
	if !errors.Is(err, repository.ErrRowNotFound) {
		t.Fatalf("want ErrRowNotFound, got %v", err)
	}
}

/* ──────────────────────────────── 6. Delete ──────────────────────────────── */

func TestMediaRepo_Delete(t *testing.T) {
	db, mock := newMock(t)
	want := &entity.Media{ID: 1, Title: "a", Username: "b"}
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM medias`)).
		WithArgs(int64(1)).
		WillReturnRows(mediaRows(want))

	got, err := postgres.NewMediaRepo(db).Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMediaRepo_Delete_foreignKeyViolation(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`DELETE FROM medias`).
		WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", TableName: "publications"})

	got, err := postgres.NewMediaRepo(db).Delete(context.Background(), 1)
	if !errors.Is(err, repository.ErrForeignKeyViolation) {
		t.Fatalf("want ErrForeignKeyViolation, got %v", err)
	}
	if got != nil {
		t.Fatalf("want nil media, got %#v", got)
	}
}

func TestMediaRepo_Delete_missing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`DELETE FROM medias`).WithArgs(int64(2)).WillReturnRows(mediaRows())

	got, err := postgres.NewMediaRepo(db).Delete(context.Background(), 2)
	if err != nil || got != nil {
		t.Fatalf("want nil, nil; got %v, %v", got, err)
	}
}
