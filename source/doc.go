// Package source loads configuration and ingestion documents into the plain
// nested values validkit works on: map[string]any (map[any]any when a YAML
// mapping has non-string keys), []any, string, bool, int, float64 and nil.
//
// JSON numbers become int when they are integral and fit, float64 otherwise,
// so integer and float schemas see the kind the author wrote.
package source
