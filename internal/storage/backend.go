// Package storage provides persistence for the game: a pluggable key-value
// backend contract, a pure-Go SQLite implementation, an in-memory
// implementation, and a typed store layered on top for game state, best
// score, and score history.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has never been written. It is the
// defined "absent" sentinel, distinguishable from a present-but-empty value.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a key-value store with durable writes: a Set must be observed
// by the next Get in the same session. Implementations: SQLite (on disk)
// and Memory (tests, --no-persist play).
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
