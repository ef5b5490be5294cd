package fetch

import (
	"encoding/json"
	"fmt"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// IndexFileName is the fixed name of the index document under the
// site root. Build pipelines emit it next to the site's pages; both
// fetchers resolve it relative to their configured root.
const IndexFileName = "search_index.json"

// indexRecord is the wire format of a single index entry.
type indexRecord struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// decodeIndex parses the raw index body into domain documents.
// The body must be a JSON array of records; anything else matches
// domain.ErrParseFailed. Records with missing fields are passed
// through untouched so the store can report them individually.
func decodeIndex(body []byte) ([]domain.Document, error) {
	var records []indexRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding index: %v: %w", err, domain.ErrParseFailed)
	}

	docs := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, domain.Document{
			URL:     rec.URL,
			Title:   rec.Title,
			Content: rec.Content,
		})
	}
	return docs, nil
}
