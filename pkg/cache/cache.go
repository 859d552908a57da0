// Package cache stores rendered artifacts so repeated renders of the same
// dependency map skip the Graphviz subprocess. Entries are keyed by a hash of
// the render inputs and carry an optional TTL.
package cache

import (
	"context"
	"time"
)

// Cache is the artifact store used by the CLI.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
