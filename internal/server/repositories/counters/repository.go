// Package counters persists named visit counters. Serialization of
// read-modify-write cycles is the counter actor's job, not the store's:
// implementations only guarantee single-operation atomicity.
package counters

import "context"

type Repository interface {
	// Load returns the stored count for name, 0 if the counter is absent.
	Load(ctx context.Context, name string) (int64, error)

	// Save persists the count for name, creating the counter if needed.
	Save(ctx context.Context, name string, count int64) error
}
