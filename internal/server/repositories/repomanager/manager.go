// Package repomanager wires repository constructors to a storage backend and
// exposes the lazy schema-migration hook used by the signup flow.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/landing/internal/dbx"
	"github.com/dmitrijs2005/landing/internal/server/repositories/counters"
	"github.com/dmitrijs2005/landing/internal/server/repositories/flags"
	"github.com/dmitrijs2005/landing/internal/server/repositories/subscribers"
)

// RepositoryManager vends repositories bound to a database handle and keeps
// the schema current. EnsureSchema runs before the first subscriber insert;
// it is effectively a no-op on every later call.
type RepositoryManager interface {
	Subscribers(db dbx.DBTX) subscribers.Repository
	Flags(db dbx.DBTX) flags.Repository
	Counters(db dbx.DBTX) counters.Repository
	EnsureSchema(ctx context.Context, db *sql.DB) error
}
