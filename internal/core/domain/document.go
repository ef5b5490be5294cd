package domain

// IndexSchemaVersion identifies the layout of the persisted index.
// Stores stamped with a different version are dropped and recreated on
// open; there is no in-place migration.
const IndexSchemaVersion = 1

// Document represents one indexable page of the documentation site.
// It is the unit stored in the index and the unit returned by queries.
type Document struct {
	// URL is the site-relative location of the page.
	// It is the primary key: exactly one Document per URL exists in
	// the store at any time. Stable for a given site build.
	URL string

	// Title is the human-readable page title. Optional; display text
	// falls back to a path derived from URL when empty.
	Title string

	// Content is the full extracted text of the page.
	// It is the only field queries are matched against.
	Content string
}

// Indexable reports whether the document carries the fields required
// for storage. Records failing this check are tolerated as per-record
// insert failures, never as a whole-batch abort.
func (d Document) Indexable() bool {
	return d.URL != "" && d.Content != ""
}
