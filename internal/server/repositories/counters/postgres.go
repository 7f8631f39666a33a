package counters

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

func (r *PostgresRepository) Load(ctx context.Context, name string) (int64, error) {
	query :=
		`SELECT count FROM counters
		 WHERE name = $1
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&count)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Save(ctx context.Context, name string, count int64) error {
	query :=
		`INSERT INTO counters (name, count)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET count = excluded.count
		 `

	_, err := r.db.ExecContext(ctx, query, name, count)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
