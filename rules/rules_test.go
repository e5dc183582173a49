package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	doc := map[string]any{
		"tls":    map[string]any{"enabled": true},
		"nodes":  []any{map[string]any{"role": "worker"}},
		"limits": map[any]any{3: "three"},
	}

	v, ok := Lookup(doc, "tls.enabled")
	require.True(t, ok)
	require.Equal(t, true, v)

	v, ok = Lookup(doc, "nodes[0].role")
	require.True(t, ok)
	require.Equal(t, "worker", v)

	v, ok = Lookup(doc, "limits.3")
	require.True(t, ok)
	require.Equal(t, "three", v)

	_, ok = Lookup(doc, "nodes[1].role")
	require.False(t, ok)
	_, ok = Lookup(doc, "tls.missing")
	require.False(t, ok)
	_, ok = Lookup("scalar", "a")
	require.False(t, ok)
}

func TestLookup_StructByJSONTag(t *testing.T) {
	type inner struct {
		Mode string `json:"mode,omitempty"`
		Port int
	}
	doc := struct {
		Inner *inner `json:"inner"`
	}{Inner: &inner{Mode: "strict", Port: 80}}

	v, ok := Lookup(doc, "inner.mode")
	require.True(t, ok)
	require.Equal(t, "strict", v)

	v, ok = Lookup(doc, "inner.Port")
	require.True(t, ok)
	require.Equal(t, 80, v)
}

func TestIf(t *testing.T) {
	doc := map[string]any{"n": 5, "mode": "a"}
	assert.True(t, If("n", Eq, 5.0)(doc))
	assert.True(t, If("n", Ne, 4)(doc))
	assert.True(t, If("n", Lt, 6)(doc))
	assert.True(t, If("n", Le, 5)(doc))
	assert.True(t, If("n", Gt, 4)(doc))
	assert.True(t, If("n", Ge, 5)(doc))
	assert.False(t, If("mode", Lt, 1)(doc))
	assert.False(t, If("missing", Ne, 1)(doc))
	assert.True(t, Equals("mode", "a")(doc))
}

func TestTruthyAndExists(t *testing.T) {
	doc := map[string]any{"on": true, "off": false, "zero": 0, "empty": "", "list": []any{1}, "null": nil}
	assert.True(t, Truthy("on")(doc))
	assert.False(t, Truthy("off")(doc))
	assert.False(t, Truthy("zero")(doc))
	assert.False(t, Truthy("empty")(doc))
	assert.True(t, Truthy("list")(doc))
	assert.False(t, Truthy("missing")(doc))

	assert.True(t, Exists("off")(doc))
	assert.False(t, Exists("null")(doc))
	assert.False(t, Exists("missing")(doc))
}

func TestCombinators(t *testing.T) {
	doc := map[string]any{"a": true, "b": false}
	assert.True(t, All(Truthy("a"), Not(Truthy("b")))(doc))
	assert.False(t, All(Truthy("a"), Truthy("b"))(doc))
	assert.True(t, Any(Truthy("b"), Truthy("a"))(doc))
	assert.False(t, Any()(doc))
	assert.True(t, All()(doc))
}
