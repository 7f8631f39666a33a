// Package flags is the key-value feature-flag store. Values are opaque
// strings; concurrent writers to the same key race with last-write-wins
// semantics and no conflict reporting.
package flags

import "context"

type Repository interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key, value string) error
}
