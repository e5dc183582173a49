package dsl

import validkit "github.com/reoring/validkit"

// List validates a sequence whose elements match item.
func List(item validkit.Schema) validkit.Node { return validkit.ListOf(item) }

// Dict validates a keyed map: every key must be of kind key and every value
// must match value.
func Dict(key validkit.Kind, value validkit.Schema) validkit.Node {
	return validkit.MapOf(key, value)
}

// OneOf accepts only the listed choices.
func OneOf(choices ...any) validkit.Node { return validkit.EnumOf(choices...) }

// Object starts a mapping schema; chain Field(name, schema).
func Object() validkit.ObjectSchema { return validkit.Object() }

// Shape builds a mapping schema from a Go map, fields ordered by name.
func Shape(fields map[string]validkit.Schema) validkit.ObjectSchema {
	return validkit.Shape(fields)
}
