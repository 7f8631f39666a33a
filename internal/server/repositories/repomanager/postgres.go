package repomanager

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/landing/internal/dbx"
	"github.com/dmitrijs2005/landing/internal/server/migrations"
	"github.com/dmitrijs2005/landing/internal/server/repositories/counters"
	"github.com/dmitrijs2005/landing/internal/server/repositories/flags"
	"github.com/dmitrijs2005/landing/internal/server/repositories/subscribers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs the
// embedded goose migrations on first use.
type PostgresRepositoryManager struct {
	mu   sync.Mutex
	done bool
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Subscribers returns a subscribers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Subscribers(db dbx.DBTX) subscribers.Repository {
	return subscribers.NewPostgresRepository(db)
}

// Flags returns a flags.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Flags(db dbx.DBTX) flags.Repository {
	return flags.NewPostgresRepository(db)
}

// Counters returns a counters.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Counters(db dbx.DBTX) counters.Repository {
	return counters.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// EnsureSchema sets up goose with the embedded migrations and runs them.
// Success is cached: callers may invoke it before every insert without paying
// a migration round trip after the first success. A failure is not cached,
// so the next signup retries the migration.
func (m *PostgresRepositoryManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return nil
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}

	m.done = true
	return nil
}
