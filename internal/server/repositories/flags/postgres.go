package flags

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/landing/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query :=
		`SELECT value FROM flags
		 WHERE key = $1
		 `

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db error: %w", err)
	}

	return value, true, nil
}

func (r *PostgresRepository) Put(ctx context.Context, key, value string) error {
	query :=
		`INSERT INTO flags (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query, key, value)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
