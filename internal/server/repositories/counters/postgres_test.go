package counters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const loadQ = `(?s)^SELECT\s+count\s+FROM\s+counters\s+WHERE\s+name\s*=\s*\$1\s*$`
const saveQ = `(?s)^INSERT\s+INTO\s+counters\s*\(name,\s*count\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(name\)\s+DO\s+UPDATE\s+SET.*$`

func TestLoad_Existing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(loadQ).
		WithArgs("global").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(41)))

	n, err := repo.Load(context.Background(), "global")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if n != 41 {
		t.Fatalf("expected 41, got %d", n)
	}
}

func TestLoad_AbsentDefaultsToZero(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(loadQ).
		WithArgs("global").
		WillReturnError(sql.ErrNoRows)

	n, err := repo.Load(context.Background(), "global")
	if err != nil {
		t.Fatalf("absent counter must not be an error, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestSave_Upserts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(saveQ).
		WithArgs("global", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), "global", 42); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

func TestSave_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(saveQ).
		WithArgs("global", int64(1)).
		WillReturnError(errors.New("db down"))

	err := repo.Save(context.Background(), "global", 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
