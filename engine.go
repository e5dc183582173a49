package validkit

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strconv"

	"github.com/reoring/validkit/i18n"
	"github.com/reoring/validkit/internal/coerce"
)

// omitted is returned for a conditional field that is skipped and has no
// base value; containers drop it instead of storing null.
type omittedValue struct{}

var omitted = omittedValue{}

// walker carries the per-call state of one validation run. It is never shared
// between calls.
type walker struct {
	root    any
	partial bool
	collect bool
	issues  Issues
	log     *slog.Logger
}

// report records it in collect mode, or turns it into the error that aborts
// the call in fail-fast mode.
func (w *walker) report(it Issue) error {
	if w.collect {
		w.issues = AppendIssues(w.issues, it)
		return nil
	}
	return Issues{it}
}

// fail reports it and, in collect mode, substitutes the raw value so siblings
// keep being processed.
func (w *walker) fail(it Issue) (any, error) {
	if err := w.report(it); err != nil {
		return nil, err
	}
	return it.Value, nil
}

// walk validates value against s at path, with base as the fallback value.
func (w *walker) walk(value any, s Schema, path Path, base any) (any, error) {
	switch sc := resolve(s).(type) {
	case Kind:
		switch sc {
		case KindString, KindInt, KindFloat, KindBool, KindList, KindMap:
			return w.walkNode(value, NodeOf(sc), path, base)
		}
		return value, nil
	case Node:
		return w.walkNode(value, sc, path, base)
	case ObjectSchema:
		return w.walkObject(value, sc, path, base)
	default:
		// unknown or nil schema: pass through
		return value, nil
	}
}

func (w *walker) walkNode(value any, n Node, path Path, base any) (any, error) {
	if value == nil && n.optional {
		return coerce.Clone(base), nil
	}
	if n.when != nil && !n.when(w.root) {
		if base != nil {
			return coerce.Clone(base), nil
		}
		return omitted, nil
	}

	raw := value
	switch n.kind {
	case KindString, KindInt, KindFloat, KindBool:
		v, hint := value, ""
		if n.coerce {
			v, hint = coerceTo(n.kind, value)
		}
		if !matchesKind(v, n.kind) {
			it := typeIssue(path, n.kind, v, raw)
			it.Hint = hint
			return w.fail(it)
		}
		if it, bad := n.refine(v, path, raw); bad {
			return w.fail(it)
		}
		value = v
	case KindEnum:
		if !slicesContainsEqual(n.choices, value) {
			return w.fail(path.Issue(CodeInvalidEnum, i18n.T(CodeInvalidEnum, map[string]string{
				"value":   fmt.Sprint(value),
				"choices": fmt.Sprint(n.choices),
			}), raw, "choices", n.choices))
		}
	case KindList:
		if !coerce.IsList(value) {
			return w.fail(typeIssue(path, KindList, value, raw))
		}
		items, err := w.walkList(value, n.item, path)
		if err != nil {
			return nil, err
		}
		value = items
	case KindMap:
		if !coerce.IsMap(value) {
			return w.fail(typeIssue(path, KindMap, value, raw))
		}
		m, err := w.walkMap(value, n, path)
		if err != nil {
			return nil, err
		}
		value = m
	}
	return w.runTransforms(value, n.transforms, path, raw)
}

func (w *walker) runTransforms(value any, fns []Transform, path Path, raw any) (any, error) {
	for _, fn := range fns {
		out, err := fn(value)
		if err != nil {
			it := path.Issue(CodeCustom, err.Error(), raw)
			it.Cause = err
			return w.fail(it)
		}
		value = out
	}
	return value, nil
}

func (w *walker) walkList(value any, item Schema, path Path) ([]any, error) {
	items := listItems(value)
	out := make([]any, len(items))
	for i, it := range items {
		res, err := w.walk(it, item, path.Index(i), nil)
		if err != nil {
			return nil, err
		}
		if res == omitted {
			res = nil
		}
		out[i] = res
	}
	return out, nil
}

func (w *walker) walkMap(value any, n Node, path Path) (any, error) {
	rv := reflect.ValueOf(value)
	keys := rv.MapKeys()
	sortKeys(keys)
	out := newMapLike(value, len(keys))
	for _, kv := range keys {
		k := kv.Interface()
		v := rv.MapIndex(kv).Interface()
		p := path.Field(k)
		if n.keyKind != KindAny && !matchesKind(k, n.keyKind) {
			it := p.Issue(CodeInvalidKey, i18n.T(CodeInvalidKey, map[string]string{
				"expected": n.keyKind.String(),
				"got":      coerce.KindName(k),
			}), k)
			if err := w.report(it); err != nil {
				return nil, err
			}
			out.set(k, v)
			continue
		}
		res, err := w.walk(v, n.value, p, nil)
		if err != nil {
			return nil, err
		}
		if res == omitted {
			continue
		}
		out.set(k, res)
	}
	return out.value(), nil
}

func (w *walker) walkObject(value any, o ObjectSchema, path Path, base any) (any, error) {
	var src map[string]any
	if value != nil {
		m, ok := stringKeyed(value)
		if !ok {
			return w.fail(typeIssue(path, KindMap, value, value))
		}
		src = m
	}
	baseMap, _ := stringKeyed(base)

	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		p := path.Field(f.name)
		subBase := baseMap[f.name]
		raw, present := src[f.name]
		if !present {
			v, emit, err := w.resolveMissing(f.schema, p, subBase)
			if err != nil {
				return nil, err
			}
			if emit {
				out[f.name] = v
			}
			continue
		}
		res, err := w.walk(raw, f.schema, p, subBase)
		if err != nil {
			return nil, err
		}
		if res == omitted {
			continue
		}
		out[f.name] = res
	}
	if w.log.Enabled(context.Background(), slog.LevelDebug) {
		for k := range src {
			if !o.has(k) {
				w.log.Debug("validkit: dropping unknown key", "path", path.Field(k).String())
			}
		}
	}
	return out, nil
}

// resolveMissing decides a key absent from the input. Precedence:
//  1. a base value for the key
//  2. the node's explicit default
//  3. a conditional requirement that does not hold: skip
//  4. an optional node, or partial mode: skip
//  5. otherwise the key is required and missing
//
// A default therefore wins over an unmet condition.
func (w *walker) resolveMissing(s Schema, path Path, base any) (v any, emit bool, err error) {
	if base != nil {
		return coerce.Clone(base), true, nil
	}
	n, isNode := resolve(s).(Node)
	if isNode && n.hasDefault {
		return coerce.Clone(n.def), true, nil
	}
	if isNode && n.when != nil && !n.when(w.root) {
		return nil, false, nil
	}
	if (isNode && n.optional) || w.partial {
		return nil, false, nil
	}
	return nil, false, w.report(path.Issue(CodeRequired, i18n.T(CodeRequired, nil), nil))
}

// refine applies the kind-specific checks in a fixed order: regex, then min,
// then max.
func (n Node) refine(v any, path Path, raw any) (Issue, bool) {
	switch n.kind {
	case KindString:
		if n.pattern == nil {
			return Issue{}, false
		}
		s := reflect.ValueOf(v).String()
		if loc := n.pattern.FindStringIndex(s); loc == nil || loc[0] != 0 {
			return path.Issue(CodePattern, i18n.T(CodePattern, map[string]string{
				"value":   s,
				"pattern": n.pattern.String(),
			}), raw, "pattern", n.pattern.String()), true
		}
	case KindInt, KindFloat:
		f, _ := coerce.ToFloat64(v)
		if n.min != nil && f < *n.min {
			return path.Issue(CodeTooSmall, i18n.T(CodeTooSmall, map[string]string{
				"value": fmt.Sprint(v),
				"min":   formatBound(*n.min),
			}), raw, "min", *n.min, "got", v), true
		}
		if n.max != nil && f > *n.max {
			return path.Issue(CodeTooBig, i18n.T(CodeTooBig, map[string]string{
				"value": fmt.Sprint(v),
				"max":   formatBound(*n.max),
			}), raw, "max", *n.max, "got", v), true
		}
	}
	return Issue{}, false
}

func typeIssue(path Path, want Kind, got, raw any) Issue {
	return path.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{
		"expected": want.String(),
		"got":      coerce.KindName(got),
	}), raw, "expected", want.String(), "got", coerce.KindName(got))
}

// coerceTo converts v towards k. A failed numeric or boolean conversion leaves
// v unchanged; the returned hint then names the failed conversion so the
// following type mismatch can say why.
func coerceTo(k Kind, v any) (any, string) {
	var (
		out any
		ok  bool
	)
	switch k {
	case KindString:
		return coerce.String(v), ""
	case KindInt:
		out, ok = coerce.Int(v)
	case KindFloat:
		out, ok = coerce.Float(v)
	case KindBool:
		out, ok = coerce.Bool(v)
	default:
		return v, ""
	}
	if !ok {
		return out, "could not coerce " + coerce.KindName(v) + " to " + k.String()
	}
	return out, ""
}

func matchesKind(v any, k Kind) bool {
	switch k {
	case KindString:
		return coerce.IsString(v)
	case KindInt:
		return coerce.IsInt(v)
	case KindFloat:
		return coerce.IsFloat(v)
	case KindBool:
		return coerce.IsBool(v)
	case KindList:
		return coerce.IsList(v)
	case KindMap:
		return coerce.IsMap(v)
	default:
		return true
	}
}

func slicesContainsEqual(choices []any, v any) bool {
	for _, c := range choices {
		if coerce.Equal(c, v) {
			return true
		}
	}
	return false
}

func formatBound(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func listItems(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// stringKeyed views v as a string-keyed map. Non-string keys of a map[any]any
// are not addressable by a mapping schema and are left out.
func stringKeyed(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				out[ks] = vv
			}
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// sortKeys orders map keys deterministically: numbers numerically, then
// everything else by its printed form.
func sortKeys(keys []reflect.Value) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i].Interface(), keys[j].Interface()
		fa, aNum := coerce.ToFloat64(a)
		fb, bNum := coerce.ToFloat64(b)
		switch {
		case aNum && bNum:
			return fa < fb
		case aNum != bNum:
			return aNum
		default:
			return fmt.Sprint(a) < fmt.Sprint(b)
		}
	})
}

// mapLike builds a keyed-map output with the same key shape as the input:
// string-keyed maps stay map[string]any, everything else becomes map[any]any.
type mapLike struct {
	str map[string]any
	any map[any]any
}

func newMapLike(in any, size int) *mapLike {
	if rv := reflect.ValueOf(in); rv.Type().Key().Kind() == reflect.String {
		return &mapLike{str: make(map[string]any, size)}
	}
	return &mapLike{any: make(map[any]any, size)}
}

func (m *mapLike) set(k, v any) {
	if m.str != nil {
		m.str[reflect.ValueOf(k).String()] = v
		return
	}
	m.any[k] = v
}

func (m *mapLike) value() any {
	if m.str != nil {
		return m.str
	}
	return m.any
}
