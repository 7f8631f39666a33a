package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/landing/internal/dbx"
	"github.com/dmitrijs2005/landing/internal/server/repositories/counters"
	"github.com/dmitrijs2005/landing/internal/server/repositories/flags"
	"github.com/dmitrijs2005/landing/internal/server/repositories/subscribers"
)

// MemoryRepositoryManager vends in-memory repositories for DSN-less runs and
// tests. The db arguments are ignored; state lives for the process lifetime.
type MemoryRepositoryManager struct {
	subscribers *subscribers.MemoryRepository
	flags       *flags.MemoryRepository
	counters    *counters.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		subscribers: subscribers.NewMemoryRepository(),
		flags:       flags.NewMemoryRepository(),
		counters:    counters.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Subscribers(db dbx.DBTX) subscribers.Repository {
	return m.subscribers
}

func (m *MemoryRepositoryManager) Flags(db dbx.DBTX) flags.Repository {
	return m.flags
}

func (m *MemoryRepositoryManager) Counters(db dbx.DBTX) counters.Repository {
	return m.counters
}

func (m *MemoryRepositoryManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
	return nil
}
