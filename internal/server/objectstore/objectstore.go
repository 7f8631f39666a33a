// Package objectstore writes arbitrary bytes under string keys to an
// S3-compatible bucket (R2, MinIO, S3). Put overwrites without versioning.
package objectstore

import "context"

// Putter stores content under key. Empty content is stored as a
// zero-length object; key validation happens at the HTTP boundary.
type Putter interface {
	Put(ctx context.Context, key string, content []byte) error
}
