// Package fetch provides IndexFetcher implementations for retrieving
// the serialized search index of a documentation site.
//
// The index is a JSON array of document records living at a fixed
// relative path (search_index.json) under the site root. HTTPFetcher
// reaches the root over HTTP(S); FSFetcher reads a local build
// directory. Both decode the same wire format and map failures onto
// the domain error taxonomy: transport problems match
// domain.ErrFetchFailed, malformed bodies match domain.ErrParseFailed.
package fetch
