package validkit

import (
	"slices"
	"sort"
)

// ObjectSchema maps field names to sub-schemas. Fields are validated in
// registration order; input keys the schema does not name are dropped.
type ObjectSchema struct {
	fields []objectField
}

type objectField struct {
	name   string
	schema Schema
}

func (ObjectSchema) isSchema() {}

// Object starts an empty mapping schema.
func Object() ObjectSchema { return ObjectSchema{} }

// Shape builds a mapping schema from a Go map. Go maps carry no order, so the
// fields are registered in ascending key order.
func Shape(fields map[string]Schema) ObjectSchema {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := Object()
	for _, k := range keys {
		o = o.Field(k, fields[k])
	}
	return o
}

// Field registers a field and returns the extended schema. Registering an
// existing name replaces its schema in place.
func (o ObjectSchema) Field(name string, s Schema) ObjectSchema {
	fs := slices.Clone(o.fields)
	for i := range fs {
		if fs[i].name == name {
			fs[i].schema = s
			return ObjectSchema{fields: fs}
		}
	}
	return ObjectSchema{fields: append(fs, objectField{name: name, schema: s})}
}

// Fields lists field names in validation order.
func (o ObjectSchema) Fields() []string {
	out := make([]string, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.name
	}
	return out
}

// Lookup returns the schema registered for name.
func (o ObjectSchema) Lookup(name string) (Schema, bool) {
	for _, f := range o.fields {
		if f.name == name {
			return f.schema, true
		}
	}
	return nil, false
}

func (o ObjectSchema) has(name string) bool {
	_, ok := o.Lookup(name)
	return ok
}
