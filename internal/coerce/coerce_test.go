package coerce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/validkit/internal/coerce"
)

func TestKindPredicates(t *testing.T) {
	assert.True(t, coerce.IsInt(3))
	assert.True(t, coerce.IsInt(uint8(3)))
	assert.False(t, coerce.IsInt(true))
	assert.False(t, coerce.IsInt(3.0))
	assert.True(t, coerce.IsFloat(float32(1)))
	assert.False(t, coerce.IsFloat(1))
	assert.True(t, coerce.IsList([]string{"a"}))
	assert.False(t, coerce.IsList("abc"))
	assert.True(t, coerce.IsMap(map[int]string{}))
	assert.Equal(t, "null", coerce.KindName(nil))
	assert.Equal(t, "list", coerce.KindName([]any{}))
	assert.Equal(t, "struct {}", coerce.KindName(struct{}{}))
}

func TestInt_ParsesAndTruncates(t *testing.T) {
	v, ok := coerce.Int("123")
	require.True(t, ok)
	require.Equal(t, 123, v)

	v, ok = coerce.Int(12.9)
	require.True(t, ok)
	require.Equal(t, 12, v)

	// failure keeps the original so the caller can report the real type
	v, ok = coerce.Int("abc")
	require.False(t, ok)
	require.Equal(t, "abc", v)

	_, ok = coerce.Int(math.NaN())
	require.False(t, ok)
}

func TestFloat_FromStringAndInt(t *testing.T) {
	v, ok := coerce.Float("12.5")
	require.True(t, ok)
	require.Equal(t, 12.5, v)

	v, ok = coerce.Float(int64(3))
	require.True(t, ok)
	require.Equal(t, 3.0, v)
}

func TestBool_Table(t *testing.T) {
	for _, s := range []string{"true", "True", "1", "yes", "ON"} {
		v, ok := coerce.Bool(s)
		require.True(t, ok, s)
		require.Equal(t, true, v, s)
	}
	for _, s := range []string{"false", "FALSE", "0", "no", "off"} {
		v, ok := coerce.Bool(s)
		require.True(t, ok, s)
		require.Equal(t, false, v, s)
	}
	v, _ := coerce.Bool(1)
	require.Equal(t, true, v)
	v, _ = coerce.Bool(0.0)
	require.Equal(t, false, v)

	v, ok := coerce.Bool("maybe")
	require.False(t, ok)
	require.Equal(t, "maybe", v)
	v, ok = coerce.Bool(2)
	require.False(t, ok)
	require.Equal(t, 2, v)
}

func TestString(t *testing.T) {
	require.Equal(t, "123", coerce.String(123))
	require.Equal(t, "12.3", coerce.String(12.3))
	require.Equal(t, "true", coerce.String(true))
	// Go formatting: integral floats drop the fraction, bools are lower case.
	require.Equal(t, "1", coerce.String(1.0))
	require.Equal(t, "false", coerce.String(false))
	require.Nil(t, coerce.String(nil))
}

func TestEqual_NumericAcrossTypes(t *testing.T) {
	assert.True(t, coerce.Equal(1, 1.0))
	assert.True(t, coerce.Equal(int64(7), uint16(7)))
	assert.False(t, coerce.Equal(-1, uint(math.MaxUint)))
	assert.True(t, coerce.Equal("a", "a"))
	assert.False(t, coerce.Equal(true, 1))
	assert.True(t, coerce.Equal([]any{"x"}, []any{"x"}))
}

func TestClone_DoesNotShareContainers(t *testing.T) {
	orig := map[string]any{"list": []any{1, 2}, "m": map[string]int{"a": 1}}
	cp := coerce.Clone(orig).(map[string]any)
	cp["list"].([]any)[0] = 99
	cp["m"].(map[string]int)["a"] = 5
	require.Equal(t, 1, orig["list"].([]any)[0])
	require.Equal(t, 1, orig["m"].(map[string]int)["a"])
}
