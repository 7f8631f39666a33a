// Package subscribers persists signups. The store is keyed by email:
// inserting an email that already exists overwrites the mutable fields and
// leaves the original creation timestamp untouched.
package subscribers

import (
	"context"

	"github.com/dmitrijs2005/landing/internal/server/models"
)

type Repository interface {
	// Upsert inserts the subscriber or, on email conflict, updates
	// first/last name, mobile and the opt flags in place.
	Upsert(ctx context.Context, s *models.Subscriber) error
}
