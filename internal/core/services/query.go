package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// QueryEngine scans the content index for substring matches.
//
// Each call walks a fresh cursor in the index's natural iteration
// order, so the sequence is restartable and its order is stable across
// identical store contents. Matching is case-insensitive containment;
// there is no tokenization, stemming, or word-boundary logic, and
// results are never relevance-ranked.
type QueryEngine struct {
	store driven.DocumentStore
}

// NewQueryEngine creates a query engine over the given store.
func NewQueryEngine(store driven.DocumentStore) *QueryEngine {
	return &QueryEngine{store: store}
}

// Matches returns every document whose content contains query as a
// case-insensitive substring, in index order. An empty match set is a
// valid, non-error result. Scan failures match domain.ErrQueryFailed
// and must degrade to zero displayed results, never a crash.
func (e *QueryEngine) Matches(ctx context.Context, query string) ([]domain.Document, error) {
	cursor, err := e.store.ScanContent(ctx)
	if err != nil {
		logger.Warn("Content scan failed to start: %v", err)
		return nil, fmt.Errorf("content scan: %w", err)
	}
	defer func() {
		if cerr := cursor.Close(); cerr != nil {
			logger.Debug("Cursor close: %v", cerr)
		}
	}()

	needle := strings.ToLower(query)
	var matches []domain.Document
	scanned := 0

	for cursor.Next() {
		scanned++
		doc := cursor.Document()
		if strings.Contains(strings.ToLower(doc.Content), needle) {
			matches = append(matches, doc)
		}
	}
	if err := cursor.Err(); err != nil {
		logger.Warn("Content scan broke after %d documents: %v", scanned, err)
		return nil, fmt.Errorf("content scan: %w", err)
	}

	logger.Debug("Scanned %d documents, %d matched", scanned, len(matches))
	return matches, nil
}
