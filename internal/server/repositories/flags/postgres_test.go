package flags

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

const getQ = `(?s)^SELECT\s+value\s+FROM\s+flags\s+WHERE\s+key\s*=\s*\$1\s*$`
const putQ = `(?s)^INSERT\s+INTO\s+flags\s*\(key,\s*value,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*now\(\)\)\s*ON\s+CONFLICT\s*\(key\)\s+DO\s+UPDATE\s+SET.*$`

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQ).
		WithArgs("feature:beta").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("on"))

	v, ok, err := repo.Get(context.Background(), "feature:beta")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok || v != "on" {
		t.Fatalf("unexpected result: %q %v", v, ok)
	}
}

func TestGet_Absent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQ).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := repo.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("absent key must not be an error, got %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for absent key")
	}
}

func TestGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQ).
		WithArgs("feature:beta").
		WillReturnError(errors.New("db down"))

	_, _, err := repo.Get(context.Background(), "feature:beta")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPut_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(putQ).
		WithArgs("feature:beta", "on").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Put(context.Background(), "feature:beta", "on"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
}
