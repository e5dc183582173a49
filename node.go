package validkit

import (
	"fmt"
	"regexp"
	"slices"
)

// Node is a single-field constraint: a target kind plus its refinements,
// flags and custom transforms.
//
// Node is a value. Every configuration method returns a modified copy and
// leaves the receiver untouched, so one node can seed several fields:
//
//	port := dsl.Int().Range(1, 65535)
//	s := validkit.Object().
//		Field("http", port.Default(80)).
//		Field("https", port.Default(443))
type Node struct {
	kind        Kind
	optional    bool
	coerce      bool
	hasDefault  bool
	def         any
	examples    []any
	description string
	when        Predicate
	transforms  []Transform

	pattern  *regexp.Regexp
	min, max *float64
	choices  []any
	item     Schema
	keyKind  Kind
	value    Schema
}

func (Node) isSchema() {}

// NodeOf returns an unconfigured node of kind k.
func NodeOf(k Kind) Node { return Node{kind: k} }

// ListOf returns a sequence node validating every element against item.
func ListOf(item Schema) Node { return Node{kind: KindList, item: item} }

// MapOf returns a keyed-map node. Keys must have kind key (KindAny accepts
// every key) and values are validated against value.
func MapOf(key Kind, value Schema) Node { return Node{kind: KindMap, keyKind: key, value: value} }

// EnumOf returns a node accepting only the given choices.
func EnumOf(choices ...any) Node {
	return Node{kind: KindEnum, choices: slices.Clone(choices)}
}

// Coerce enables best-effort conversion to the node's kind before the type check.
func (n Node) Coerce() Node {
	n.coerce = true
	return n
}

// Optional lets the field be missing or null.
func (n Node) Optional() Node {
	n.optional = true
	return n
}

// Default sets the value used when the field is missing. It implies Optional.
func (n Node) Default(v any) Node {
	n.hasDefault = true
	n.def = v
	n.optional = true
	return n
}

// Examples records representative values. They never affect validation and
// the first one feeds Sample when no default is set.
func (n Node) Examples(vs ...any) Node {
	n.examples = slices.Clone(vs)
	return n
}

// Description records documentation text; it has no effect on validation.
func (n Node) Description(s string) Node {
	n.description = s
	return n
}

// Custom appends a transform. Transforms run in registration order, each
// receiving the previous result; the first error stops the chain.
func (n Node) Custom(fn Transform) Node {
	if fn == nil {
		return n
	}
	n.transforms = append(slices.Clip(n.transforms), fn)
	return n
}

// When makes the field required only while pred holds for the input document.
// While it does not hold, the field is skipped without any checks.
func (n Node) When(pred Predicate) Node {
	n.when = pred
	return n
}

// Regex requires string values to match pattern starting at their first
// character. It panics if pattern does not compile or the node is not a string node.
func (n Node) Regex(pattern string) Node {
	n.mustBe("Regex", KindString)
	n.pattern = regexp.MustCompile(pattern)
	return n
}

// Range sets inclusive bounds for int and float nodes.
func (n Node) Range(lo, hi float64) Node {
	return n.Min(lo).Max(hi)
}

// Min sets an inclusive lower bound for int and float nodes.
func (n Node) Min(lo float64) Node {
	n.mustBe("Min", KindInt, KindFloat)
	n.min = &lo
	return n
}

// Max sets an inclusive upper bound for int and float nodes.
func (n Node) Max(hi float64) Node {
	n.mustBe("Max", KindInt, KindFloat)
	n.max = &hi
	return n
}

func (n Node) mustBe(op string, kinds ...Kind) {
	if !slices.Contains(kinds, n.kind) {
		panic(fmt.Sprintf("validkit: %s is not applicable to a %s node", op, n.kind))
	}
}

// NodeInfo is a read-only snapshot of a node's configuration.
type NodeInfo struct {
	Kind        Kind
	Optional    bool
	Coerce      bool
	HasDefault  bool
	Default     any
	Examples    []any
	Description string
	Conditional bool
	Transforms  int
	Pattern     string
	Min, Max    *float64
	Choices     []any
	Item        Schema
	KeyKind     Kind
	Value       Schema
}

// Info reports how the node is configured.
func (n Node) Info() NodeInfo {
	info := NodeInfo{
		Kind:        n.kind,
		Optional:    n.optional,
		Coerce:      n.coerce,
		HasDefault:  n.hasDefault,
		Default:     n.def,
		Examples:    slices.Clone(n.examples),
		Description: n.description,
		Conditional: n.when != nil,
		Transforms:  len(n.transforms),
		Choices:     slices.Clone(n.choices),
		Item:        n.item,
		KeyKind:     n.keyKind,
		Value:       n.value,
	}
	if n.pattern != nil {
		info.Pattern = n.pattern.String()
	}
	if n.min != nil {
		lo := *n.min
		info.Min = &lo
	}
	if n.max != nil {
		hi := *n.max
		info.Max = &hi
	}
	return info
}
