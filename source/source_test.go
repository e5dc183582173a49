package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON_NumbersKeepTheirKind(t *testing.T) {
	v, err := JSON([]byte(`{"port": 8080, "ratio": 0.5, "big": 1e3, "list": [1, 2.5], "ok": true, "none": null}`))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"port":  8080,
		"ratio": 0.5,
		"big":   1000.0,
		"list":  []any{1, 2.5},
		"ok":    true,
		"none":  nil,
	}, v)
}

func TestJSON_RejectsTrailingData(t *testing.T) {
	_, err := JSON([]byte(`{"a":1} {"b":2}`))
	require.Error(t, err)

	_, err = JSON([]byte(`{"a":`))
	require.Error(t, err)
}

func TestYAML_KeyShapes(t *testing.T) {
	v, err := YAML([]byte("name: svc\nports:\n  80: http\n  443: https\nnested:\n  a: [1, x]\n"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"name":   "svc",
		"ports":  map[any]any{80: "http", 443: "https"},
		"nested": map[string]any{"a": []any{1, "x"}},
	}, v)
}

func TestYAML_Documents(t *testing.T) {
	docs, err := YAMLDocuments([]byte("a: 1\n---\nb: 2\n"))
	require.NoError(t, err)
	require.Equal(t, []any{map[string]any{"a": 1}, map[string]any{"b": 2}}, docs)

	v, err := YAML(nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": FormatJSON,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}
	_, err := FormatFor("a.toml")
	require.Error(t, err)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 30\n"), 0o600))

	v, err := File(path)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"timeout": 30}, v)

	_, err = File(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
