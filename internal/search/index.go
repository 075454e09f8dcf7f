package search

import (
	"context"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
)

// FavoriteDocument is a favorite as stored in the search index
type FavoriteDocument struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Index filters the favorites collection by free text
type Index interface {
	Index(entry domain.FavoriteEntry) error
	Remove(id int64) error

	// Search returns the ids of favorites matching q
	Search(ctx context.Context, q string) (map[int64]bool, error)

	Count() (uint64, error)
	Close() error
}

// FavoriteToDocument converts a favorite to a search document
func FavoriteToDocument(entry domain.FavoriteEntry) *FavoriteDocument {
	return &FavoriteDocument{
		ID:     entry.ID,
		Title:  entry.Title,
		Author: entry.Author,
	}
}
