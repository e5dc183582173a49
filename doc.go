// Package validkit validates and coerces plain nested data (maps, slices and
// scalars) against a declarative schema.
//
// A schema is one of:
//
//   - a Node: a single constraint (kind, refinements, default, conditional
//     requirement, custom transforms), usually built with the dsl package;
//   - an ObjectSchema: named fields mapped to sub-schemas;
//   - a bare Kind marker such as KindInt, shorthand for an unconfigured node.
//
// Validate walks the schema against the input. Missing keys are resolved in a
// fixed order: base value, then default, then an unmet conditional
// requirement (skip), then optional/partial (skip), else a required-key issue.
// Migration rules rewrite top-level keys before validation. Errors are
// reported as Issues with dotted paths ("nodes[0].ip"), either fail-fast or
// collected.
//
// Typical usage:
//
//	s := validkit.Object().
//		Field("host", dsl.Str().Default("localhost")).
//		Field("port", dsl.Int().Coerce().Range(1, 65535))
//
//	cfg, err := validkit.Validate(raw, s)
//	res := validkit.Collect(raw, s, validkit.Opt{Base: previous})
//	sample := validkit.Sample(s)
//
// Schemas carry no per-call state and may be shared between goroutines.
package validkit
