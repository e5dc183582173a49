package validkit

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Typed associates a schema with the Go type its output is read into. It has
// no validation behavior of its own: the wrapped schema is what runs.
//
//	type DB struct {
//		Host string `json:"host"`
//		Port int    `json:"port"`
//	}
//	var dbSchema = validkit.Define[DB](validkit.Object().
//		Field("host", dsl.Str().Default("localhost")).
//		Field("port", dsl.Int().Default(5432)))
//
//	db, err := dbSchema.Validate(raw)
type Typed[T any] struct {
	schema Schema
}

// Define wraps s for typed results.
func Define[T any](s Schema) Typed[T] { return Typed[T]{schema: s} }

func (Typed[T]) isSchema() {}

func (t Typed[T]) unwrap() Schema { return t.schema }

// Schema returns the wrapped schema tree.
func (t Typed[T]) Schema() Schema { return t.schema }

// Validate runs Validate on the wrapped schema and reads the result into T.
// In collect mode the best-effort value is converted and returned with the
// issues; when it does not fit T the zero value is returned instead.
func (t Typed[T]) Validate(data any, opts ...Opt) (T, error) {
	out, err := Validate(data, t.schema, opts...)
	if err != nil {
		if _, ok := AsIssues(err); !ok || out == nil {
			var zero T
			return zero, err
		}
	}
	v, cerr := convertTo[T](out)
	if err != nil {
		// issues take precedence over a best-effort value that does not fit T
		return v, err
	}
	return v, cerr
}

// Sample generates representative data for the wrapped schema and reads it into T.
func (t Typed[T]) Sample() (T, error) {
	return convertTo[T](Sample(t.schema))
}

// convertTo asserts v to T, falling back to a JSON round trip so that
// validated maps can be read into tagged structs.
func convertTo[T any](v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}
	if v == nil {
		return zero, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("validkit: convert %T to %T: %w", v, zero, err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return zero, fmt.Errorf("validkit: convert %T to %T: %w", v, zero, err)
	}
	return out, nil
}

type unwrapper interface {
	unwrap() Schema
}

// resolve peels Typed wrappers off s.
func resolve(s Schema) Schema {
	for {
		u, ok := s.(unwrapper)
		if !ok {
			return s
		}
		s = u.unwrap()
	}
}
