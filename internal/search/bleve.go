package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/en" // "en" analyzer
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

var _ Index = (*BleveIndex)(nil)

// BleveIndex implements Index with an in-memory Bleve index
type BleveIndex struct {
	index  bleve.Index
	mu     sync.RWMutex
	logger *logger.Logger
}

// NewBleveIndex creates an empty in-memory favorites index
func NewBleveIndex(log *logger.Logger) (*BleveIndex, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	return &BleveIndex{
		index:  idx,
		logger: log.WithComponent("bleve-index"),
	}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	favoriteMapping := bleve.NewDocumentMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en"
	titleFieldMapping.Store = false
	favoriteMapping.AddFieldMappingsAt("title", titleFieldMapping)

	authorFieldMapping := bleve.NewTextFieldMapping()
	authorFieldMapping.Analyzer = "en"
	authorFieldMapping.Store = false
	favoriteMapping.AddFieldMappingsAt("author", authorFieldMapping)

	// the id only identifies the document
	idFieldMapping := bleve.NewNumericFieldMapping()
	idFieldMapping.Index = false
	favoriteMapping.AddFieldMappingsAt("id", idFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("favorite", favoriteMapping)
	indexMapping.DefaultMapping = favoriteMapping
	return indexMapping
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Index adds or replaces a favorite
func (b *BleveIndex) Index(entry domain.FavoriteEntry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.index.Index(docID(entry.ID), FavoriteToDocument(entry)); err != nil {
		return fmt.Errorf("failed to index favorite: %w", err)
	}
	b.logger.Debug("Indexed favorite", "id", entry.ID)
	return nil
}

// Remove drops a favorite from the index
func (b *BleveIndex) Remove(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.index.Delete(docID(id)); err != nil {
		return fmt.Errorf("failed to delete from index: %w", err)
	}
	b.logger.Debug("Removed favorite from index", "id", id)
	return nil
}

// Search matches q against title and author
func (b *BleveIndex) Search(ctx context.Context, q string) (map[int64]bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count, err := b.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("failed to get doc count: %w", err)
	}

	req := bleve.NewSearchRequest(buildQuery(q))
	req.Size = int(count)
	res, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make(map[int64]bool, len(res.Hits))
	for _, hit := range res.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}

	b.logger.Debug("Favorites search completed", "query", q, "hits", len(ids))
	return ids, nil
}

// buildQuery ORs a match per field so each field's analyzer is applied
func buildQuery(q string) query.Query {
	q = strings.TrimSpace(q)
	if q == "" {
		return bleve.NewMatchAllQuery()
	}

	title := bleve.NewMatchQuery(q)
	title.SetField("title")
	author := bleve.NewMatchQuery(q)
	author.SetField("author")
	return bleve.NewDisjunctionQuery(title, author)
}

// Count returns the number of indexed favorites
func (b *BleveIndex) Count() (uint64, error) {
	count, err := b.index.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return count, nil
}

// Close releases the index
func (b *BleveIndex) Close() error {
	if err := b.index.Close(); err != nil {
		return fmt.Errorf("failed to close index: %w", err)
	}
	return nil
}
