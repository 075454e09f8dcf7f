// Package memory provides an in-process storage.KV for tests and
// throwaway sessions.
package memory

import (
	"context"
	"sync"

	"github.com/amiyamandal-dev/podgrid/internal/storage"
)

// KV is a map-backed storage.KV. SetErr, when non-nil, is returned by
// every Set call without storing anything.
type KV struct {
	mu     sync.Mutex
	data   map[string][]byte
	SetErr error
	Writes int
}

// New creates an empty store
func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	v, ok := k.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.SetErr != nil {
		return k.SetErr
	}
	k.data[key] = append([]byte(nil), value...)
	k.Writes++
	return nil
}
