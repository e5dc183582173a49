package validkit

import "log/slog"

// Kind names the target kind of a constraint node. The scalar kinds double as
// bare schema markers: KindInt used as a Schema behaves like an unconfigured
// integer node.
type Kind int

const (
	KindAny    Kind = iota // No constraint; as a marker the value passes through.
	KindString             // Go string (including named string types).
	KindInt                // Go signed or unsigned integer, bool excluded.
	KindFloat              // float32 or float64.
	KindBool
	KindList // Slice or array, validated per element.
	KindMap  // Keyed map with a key kind and a value schema.
	KindEnum // Fixed set of allowed values.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	default:
		return "any"
	}
}

func (Kind) isSchema() {}

// Schema is the recursive schema tree: a Node, an ObjectSchema, a bare Kind
// marker, or a Typed wrapper around one of those. The set is closed.
type Schema interface {
	isSchema()
}

// Transform is a custom check or conversion run after the built-in checks.
// It returns the (possibly new) value or an error that fails validation.
type Transform func(v any) (any, error)

// Predicate decides a conditional requirement from the whole (migrated) input
// document.
type Predicate func(root any) bool

// Opt bundles per-call validation options. Several Opt values may be passed;
// they are merged left to right.
type Opt struct {
	// Partial tolerates missing keys that have no default or base value.
	Partial bool
	// Base supplies fallbacks for missing keys, shaped like the output.
	Base any
	// Migrate is applied once to the top-level input before validation.
	Migrate Migration
	// CollectErrors gathers every issue instead of stopping at the first.
	CollectErrors bool
	// Logger receives debug records (dropped keys, applied migrations).
	// Nil discards them.
	Logger *slog.Logger
}

func mergeOpts(opts []Opt) Opt {
	var o Opt
	for _, x := range opts {
		o.Partial = o.Partial || x.Partial
		o.CollectErrors = o.CollectErrors || x.CollectErrors
		if x.Base != nil {
			o.Base = x.Base
		}
		if x.Migrate != nil {
			o.Migrate = x.Migrate
		}
		if x.Logger != nil {
			o.Logger = x.Logger
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Result pairs the best-effort validated value with every issue found.
type Result struct {
	Value  any
	Issues Issues
}

// OK reports whether validation produced no issues.
func (r Result) OK() bool { return len(r.Issues) == 0 }

// Err returns the issues as an error, or nil when there are none.
func (r Result) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return r.Issues
}
