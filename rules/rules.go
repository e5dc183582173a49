// Package rules builds conditional-requirement predicates for Node.When.
// Predicates read the whole input document by path; paths use the same syntax
// as issue paths ("tls.enabled", "nodes[0].role").
package rules

import (
	"reflect"
	"strconv"
	"strings"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/internal/coerce"
)

// Op defines simple comparison operators for If(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// If holds when the value at path compares to want with op. A missing path
// never holds.
func If(path string, op Op, want any) validkit.Predicate {
	segs := splitPath(path)
	return func(root any) bool {
		cur, ok := lookup(root, segs)
		if !ok {
			return false
		}
		return compare(cur, op, want)
	}
}

// Equals is shorthand for If(path, Eq, want).
func Equals(path string, want any) validkit.Predicate { return If(path, Eq, want) }

// Truthy holds when the value at path is present and truthy: true, a non-zero
// number, or a non-empty string, list or map.
func Truthy(path string) validkit.Predicate {
	segs := splitPath(path)
	return func(root any) bool {
		cur, ok := lookup(root, segs)
		return ok && truthy(cur)
	}
}

// Exists holds when path resolves to a non-null value.
func Exists(path string) validkit.Predicate {
	segs := splitPath(path)
	return func(root any) bool {
		cur, ok := lookup(root, segs)
		return ok && cur != nil
	}
}

// All holds when every predicate holds.
func All(preds ...validkit.Predicate) validkit.Predicate {
	return func(root any) bool {
		for _, p := range preds {
			if p != nil && !p(root) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds.
func Any(preds ...validkit.Predicate) validkit.Predicate {
	return func(root any) bool {
		for _, p := range preds {
			if p != nil && p(root) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p validkit.Predicate) validkit.Predicate {
	return func(root any) bool { return !p(root) }
}

// Lookup returns the value at path inside root.
func Lookup(root any, path string) (any, bool) { return lookup(root, splitPath(path)) }

// ------- helpers -------

// segment is a map key or, when isIndex is set, a sequence index.
type segment struct {
	key     string
	index   int
	isIndex bool
}

func splitPath(p string) []segment {
	var out []segment
	for _, part := range strings.Split(p, ".") {
		name := part
		var idx []int
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 || !strings.HasSuffix(name, "]") {
				break
			}
			n, ok := tryParseInt(name[strings.LastIndexByte(name, '[')+1 : len(name)-1])
			if !ok {
				break
			}
			idx = append([]int{n}, idx...)
			name = name[:strings.LastIndexByte(name, '[')]
		}
		if name != "" {
			out = append(out, segment{key: name})
		}
		for _, i := range idx {
			out = append(out, segment{index: i, isIndex: true})
		}
	}
	return out
}

func lookup(v any, segs []segment) (any, bool) {
	cur := reflect.ValueOf(v)
	for _, seg := range segs {
		for cur.IsValid() && (cur.Kind() == reflect.Interface || cur.Kind() == reflect.Pointer) {
			if cur.IsNil() {
				return nil, false
			}
			cur = cur.Elem()
		}
		if !cur.IsValid() {
			return nil, false
		}
		switch cur.Kind() {
		case reflect.Map:
			mv, ok := mapIndex(cur, seg)
			if !ok {
				return nil, false
			}
			cur = mv
		case reflect.Slice, reflect.Array:
			if !seg.isIndex || seg.index < 0 || seg.index >= cur.Len() {
				return nil, false
			}
			cur = cur.Index(seg.index)
		case reflect.Struct:
			fv, ok := structField(cur, seg.key)
			if !ok || seg.isIndex {
				return nil, false
			}
			cur = fv
		default:
			return nil, false
		}
	}
	if !cur.IsValid() {
		return nil, false
	}
	return cur.Interface(), true
}

func mapIndex(m reflect.Value, seg segment) (reflect.Value, bool) {
	kt := m.Type().Key()
	var candidates []any
	if seg.isIndex {
		candidates = []any{seg.index}
	} else {
		candidates = []any{seg.key}
		// numeric keys may be written as plain path parts, e.g. "limits.3"
		if n, ok := tryParseInt(seg.key); ok {
			candidates = append(candidates, n)
		}
	}
	for _, c := range candidates {
		key := reflect.ValueOf(c)
		switch {
		case kt.Kind() == reflect.Interface:
		case key.CanConvert(kt) && key.Kind() == reflect.String && kt.Kind() == reflect.String:
			key = key.Convert(kt)
		case key.Kind() == reflect.Int && coerce.IsInt(reflect.Zero(kt).Interface()):
			key = key.Convert(kt)
		default:
			continue
		}
		if mv := m.MapIndex(key); mv.IsValid() {
			return mv, true
		}
	}
	return reflect.Value{}, false
}

// structField resolves a field by its json tag name, falling back to the Go name.
func structField(v reflect.Value, name string) (reflect.Value, bool) {
	rt := v.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := sf.Name
		if jt := sf.Tag.Get("json"); jt != "" && jt != "-" {
			if j := strings.IndexByte(jt, ','); j >= 0 {
				jt = jt[:j]
			}
			if jt != "" {
				key = jt
			}
		}
		if key == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return coerce.Equal(cur, want)
	case Ne:
		return !coerce.Equal(cur, want)
	case Lt, Le, Gt, Ge:
		// Ordered comparisons are numeric only.
		a, okA := coerce.ToFloat64(cur)
		b, okB := coerce.ToFloat64(want)
		if !okA || !okB {
			return false
		}
		switch op {
		case Lt:
			return a < b
		case Le:
			return a <= b
		case Gt:
			return a > b
		default:
			return a >= b
		}
	default:
		return false
	}
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := coerce.ToFloat64(v); ok {
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func tryParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
