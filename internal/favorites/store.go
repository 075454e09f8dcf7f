// Package favorites keeps the user's favorite podcasts in memory and
// mirrors every change into a storage.KV slot.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
	"github.com/amiyamandal-dev/podgrid/internal/storage"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

// StorageKey is the slot holding the JSON-encoded favorites array.
const StorageKey = "favoritePodcasts"

// Indexer is notified of every mutation so secondary indexes stay in step.
type Indexer interface {
	Index(entry domain.FavoriteEntry) error
	Remove(id int64) error
}

// Store is the ordered, id-unique favorites collection.
type Store struct {
	mu      sync.RWMutex
	entries []domain.FavoriteEntry
	kv      storage.KV
	indexer Indexer
	logger  *logger.Logger
}

// NewStore creates an empty store persisting to kv. indexer may be nil.
func NewStore(kv storage.KV, indexer Indexer, log *logger.Logger) *Store {
	return &Store{
		kv:      kv,
		indexer: indexer,
		logger:  log.WithComponent("favorites-store"),
	}
}

// Load replaces the in-memory collection with the persisted one. It never
// fails: a missing, unreadable or malformed value yields an empty collection.
func (s *Store) Load(ctx context.Context) {
	entries := s.readPersisted(ctx)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	if s.indexer != nil {
		for _, e := range entries {
			if err := s.indexer.Index(e); err != nil {
				s.logger.Warn("Failed to index favorite", "id", e.ID, "error", err)
			}
		}
	}

	s.logger.Info("Favorites loaded", "count", len(entries))
}

func (s *Store) readPersisted(ctx context.Context) []domain.FavoriteEntry {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Failed to read favorites, starting empty", "error", err)
		}
		return []domain.FavoriteEntry{}
	}

	var decoded []domain.FavoriteEntry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Warn("Malformed favorites value, starting empty", "error", err)
		return []domain.FavoriteEntry{}
	}

	// collapse duplicates from hand-edited values, first one wins
	seen := make(map[int64]bool, len(decoded))
	entries := make([]domain.FavoriteEntry, 0, len(decoded))
	for _, e := range decoded {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}
	return entries
}

// IsFavorite reports whether id is in the collection
func (s *Store) IsFavorite(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// All returns a snapshot of the collection in insertion order
func (s *Store) All() []domain.FavoriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FavoriteEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of favorites
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Toggle removes the entry with entry.ID if present, otherwise appends it,
// then writes the whole collection through to storage. It returns the new
// membership state. On a failed write the in-memory change is undone.
func (s *Store) Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.entries
	next := make([]domain.FavoriteEntry, 0, len(previous)+1)

	idx := s.indexOf(entry.ID)
	favorited := idx < 0
	if favorited {
		next = append(next, previous...)
		next = append(next, entry)
	} else {
		next = append(next, previous[:idx]...)
		next = append(next, previous[idx+1:]...)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return !favorited, fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("Failed to persist favorites", "id", entry.ID, "error", err)
		return !favorited, fmt.Errorf("persist favorites: %w", err)
	}
	s.entries = next

	if s.indexer != nil {
		var ierr error
		if favorited {
			ierr = s.indexer.Index(entry)
		} else {
			ierr = s.indexer.Remove(entry.ID)
		}
		if ierr != nil {
			s.logger.Warn("Failed to update favorites index", "id", entry.ID, "error", ierr)
		}
	}

	s.logger.Debug("Favorite toggled", "id", entry.ID, "favorited", favorited, "count", len(next))
	return favorited, nil
}

// indexOf must be called with mu held
func (s *Store) indexOf(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
