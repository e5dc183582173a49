package validkit

import "log/slog"

// MigrationRule rewrites one top-level input key before validation.
// Exactly one of To and Fn is used: a nil Fn renames From to To; otherwise Fn
// receives the old value and its result is stored back under From, unless Fn
// returns a Renamed, which moves the value to a new key.
type MigrationRule struct {
	From string
	To   string
	Fn   func(old any) any
}

// Renamed is the pair form a migration function returns to move a value to
// another key.
type Renamed struct {
	Key   string
	Value any
}

// Migration is an ordered rule set. Rules run in order, so a later rule sees
// the keys produced by earlier ones.
type Migration []MigrationRule

// Rename moves the value of from to to.
func Rename(from, to string) MigrationRule { return MigrationRule{From: from, To: to} }

// TransformKey rewrites the value of from with fn.
func TransformKey(from string, fn func(old any) any) MigrationRule {
	return MigrationRule{From: from, Fn: fn}
}

// ApplyMigration applies m to a top-level map and returns the rewritten copy.
// map[string]any and map[any]any keep their shape; other string-keyed maps are
// read into a map[string]any first. Rules only address string keys. Other
// inputs, and rules whose key is absent, are left alone. Nested maps are not
// visited.
func ApplyMigration(data any, m Migration) any {
	return applyMigration(data, m, nil)
}

func applyMigration(data any, m Migration, log *slog.Logger) any {
	if len(m) == 0 {
		return data
	}
	switch t := data.(type) {
	case map[string]any:
		out := make(stringMap, len(t))
		for k, v := range t {
			out[k] = v
		}
		m.apply(out, log)
		return map[string]any(out)
	case map[any]any:
		out := make(anyMap, len(t))
		for k, v := range t {
			out[k] = v
		}
		m.apply(out, log)
		return map[any]any(out)
	}
	if sm, ok := stringKeyed(data); ok {
		return applyMigration(sm, m, log)
	}
	return data
}

// keyedMap is the view a migration needs of its target map.
type keyedMap interface {
	get(key string) (any, bool)
	set(key string, v any)
	del(key string)
}

type stringMap map[string]any

func (sm stringMap) get(key string) (any, bool) {
	v, ok := sm[key]
	return v, ok
}

func (sm stringMap) set(key string, v any) { sm[key] = v }
func (sm stringMap) del(key string)        { delete(sm, key) }

type anyMap map[any]any

func (am anyMap) get(key string) (any, bool) {
	v, ok := am[key]
	return v, ok
}

func (am anyMap) set(key string, v any) { am[key] = v }
func (am anyMap) del(key string)        { delete(am, key) }

func (m Migration) apply(out keyedMap, log *slog.Logger) {
	for _, r := range m {
		old, present := out.get(r.From)
		if !present {
			continue
		}
		out.del(r.From)
		if r.Fn == nil {
			out.set(r.To, old)
			logMigration(log, r.From, r.To)
			continue
		}
		res := r.Fn(old)
		if rn, ok := res.(Renamed); ok {
			out.set(rn.Key, rn.Value)
			logMigration(log, r.From, rn.Key)
			continue
		}
		out.set(r.From, res)
		logMigration(log, r.From, r.From)
	}
}

func logMigration(log *slog.Logger, from, to string) {
	if log == nil {
		return
	}
	log.Debug("validkit: migrated key", "from", from, "to", to)
}
