// Package dsl provides the short constructors most schemas are written with.
//
// Overview
//   - Scalars: Str(), Int(), Float(), Bool() return validkit.Node values that
//     chain Coerce/Optional/Default/Examples/Description/Custom/When and their
//     kind-specific refinements (Regex for strings, Range/Min/Max for numbers).
//   - Collections: List(item), Dict(keyKind, value), OneOf(choices...).
//   - Objects: Object() and Shape(map) build mapping schemas.
//   - Markers: String, Integer, Number, Boolean are bare kind markers usable
//     wherever a schema is expected.
//
// Every chained call returns a new node, so partially configured nodes can be
// shared freely:
//
//	timeStr := dsl.Str().Regex(`^\d+[smhd]$`).Custom(codec.Duration())
//	s := dsl.Object().
//		Field("period", timeStr).
//		Field("delay", timeStr.When(rules.Truthy("delayed")))
package dsl
