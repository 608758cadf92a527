// Package persistence holds the key-value blob stores behind per-session
// storefront state (filters, wishlist).
package persistence

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("blob not found")

// BlobStore saves opaque blobs under string keys.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}
