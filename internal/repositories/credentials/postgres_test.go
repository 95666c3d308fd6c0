package credentials

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/models"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+credentials\s*\(identifier,\s*salt,\s*hash,\s*iterations\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(identifier\)\s*DO\s+NOTHING\s*RETURNING\s+id,\s*created_at\s*$`
	selectQuery = `(?s)^SELECT\s+id,\s*identifier,\s*salt,\s*hash,\s*iterations,\s*created_at\s+FROM\s+credentials\s+WHERE\s+identifier\s*=\s*\$1\s*$`
	listQuery   = `(?s)^SELECT\s+identifier\s+FROM\s+credentials\s+ORDER\s+BY\s+created_at,\s*id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-42", created)
	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("hash"), 1000).
		WillReturnRows(rows)

	in := &models.Credential{Identifier: "alice", Salt: []byte("salt"), Hash: []byte("hash"), Iterations: 1000}
	got, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "c-42" || got.Identifier != "alice" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected credential: %+v", got)
	}
	if in.ID != "" {
		t.Fatalf("input must not be mutated, got ID %q", in.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresCreate_Conflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("hash"), 1000).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	_, err := repo.Create(context.Background(), &models.Credential{Identifier: "alice", Salt: []byte("salt"), Hash: []byte("hash"), Iterations: 1000})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("hash"), 1000).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Credential{Identifier: "alice", Salt: []byte("salt"), Hash: []byte("hash"), Iterations: 1000})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresGetByIdentifier_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "identifier", "salt", "hash", "iterations", "created_at"}).
		AddRow("c-1", "alice", []byte("salt"), []byte("hash"), 100000, created)
	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByIdentifier(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByIdentifier error: %v", err)
	}
	if got.ID != "c-1" || got.Identifier != "alice" || got.Iterations != 100000 || string(got.Hash) != "hash" {
		t.Fatalf("unexpected credential: %+v", got)
	}
}

func TestPostgresGetByIdentifier_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIdentifier(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresGetByIdentifier_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByIdentifier(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"identifier"}).AddRow("alice").AddRow("bob")
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Fatalf("unexpected list: %v", got)
	}
}

func TestPostgresList_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("boom"))
	if _, err := repo.List(context.Background()); err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}

	rows := sqlmock.NewRows([]string{"identifier"}).AddRow("alice").RowError(0, errors.New("row boom"))
	mock.ExpectQuery(listQuery).WillReturnRows(rows)
	if _, err := repo.List(context.Background()); err == nil || !regexp.MustCompile(`db error: .*row boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}
