package validkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type" // value kind differs from the expected kind, or shape mismatch
	CodeRequired    = "required"     // key absent with no default, base or satisfied skip condition
	CodePattern     = "pattern"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeInvalidEnum = "invalid_enum"
	CodeInvalidKey  = "invalid_key" // keyed map entry whose key has the wrong kind
	CodeCustom      = "custom"      // a custom transform returned an error
)

// Issue represents a single validation failure.
type Issue struct {
	// Path uses dotted keys with bracketed indices, e.g. "nodes[0].ip".
	// The root is the empty string.
	Path    string
	Code    string
	Message string
	// Value is the raw offending input (nil for missing keys).
	Value any
	Hint  string // Optional: remediation hints, e.g. which coercion failed.
	Cause error  // Optional: underlying error from a custom transform.
	// Params carries structured parameters (e.g., {"min":1, "max":10}) for
	// i18n and observability.
	Params map[string]any
}

var valueFormatter = spew.ConfigState{
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// String renders "path: message (value: ...)".
func (it Issue) String() string {
	msg := it.Message
	if it.Path != "" {
		msg = it.Path + ": " + msg
	}
	return msg + " (value: " + valueFormatter.Sprintf("%v", it.Value) + ")"
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path == "" {
			b.WriteString(it.Message)
			continue
		}
		// e.g. user.age: value -1 is less than minimum 0
		fmt.Fprintf(b, "%s: %s", it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes recorded by custom transforms so errors.Is and
// errors.As see through a validation failure.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// Has reports whether at least one issue sits at path.
func (iss Issues) Has(path string) bool {
	for _, it := range iss {
		if it.Path == path {
			return true
		}
	}
	return false
}

// Paths lists issue paths in report order.
func (iss Issues) Paths() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Path
	}
	return out
}

// First returns the first issue; ok is false for an empty collection.
func (iss Issues) First() (Issue, bool) {
	if len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
