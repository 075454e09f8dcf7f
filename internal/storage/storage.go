// Package storage defines the key-value slot abstraction the favorites
// store persists through.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a minimal persistent key-value store.
type KV interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key. The write is atomic.
	Set(ctx context.Context, key string, value []byte) error
}
