// Package file persists docsift configuration as a TOML file, by
// default ~/.docsift/config.toml. Nested tables are flattened into
// dot-notation keys (site.base_url, storage.dir, ui.theme) so the
// settings service and the config command address values uniformly.
package file
