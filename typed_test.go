package validkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/dsl"
)

type dbConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

var dbSchema = validkit.Define[dbConfig](validkit.Object().
	Field("host", dsl.Str().Default("localhost")).
	Field("port", dsl.Int().Default(5432)))

func TestTyped_ValidateIntoStruct(t *testing.T) {
	db, err := dbSchema.Validate(map[string]any{"port": 5433})
	require.NoError(t, err)
	require.Equal(t, dbConfig{Host: "localhost", Port: 5433}, db)

	_, err = dbSchema.Validate(map[string]any{"port": "x"})
	require.Error(t, err)
}

func TestTyped_Sample(t *testing.T) {
	db, err := dbSchema.Sample()
	require.NoError(t, err)
	require.Equal(t, dbConfig{Host: "localhost", Port: 5432}, db)
}

func TestTyped_CollectReturnsBestEffort(t *testing.T) {
	s := validkit.Define[map[string]any](validkit.Object().Field("a", dsl.Int()).Field("b", dsl.Int()))
	out, err := s.Validate(map[string]any{"a": 1, "b": "x"}, validkit.Opt{CollectErrors: true})
	require.Error(t, err)
	require.Equal(t, map[string]any{"a": 1, "b": "x"}, out)
}

func TestTyped_UsableAsSchema(t *testing.T) {
	outer := validkit.Object().Field("db", dbSchema)
	out, err := validkit.Validate(map[string]any{"db": map[string]any{}}, outer)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}}, out)
	require.Equal(t, map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}}, validkit.Sample(outer))
}
