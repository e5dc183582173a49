package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML decodes the first document of a YAML stream. An empty stream yields nil.
func YAML(b []byte) (any, error) {
	docs, err := YAMLDocuments(b)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// YAMLDocuments decodes every document of a multi-document YAML stream.
func YAMLDocuments(b []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("source: decode yaml: %w", err)
		}
		out = append(out, yamlNormalizeValue(node))
	}
	return out, nil
}

// yamlNormalizeValue rewrites decoded YAML recursively: mappings whose keys
// are all strings become map[string]any; other mappings stay map[any]any so
// keyed-map schemas can check their key kind.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		allStrings := true
		for k := range t {
			if _, ok := k.(string); !ok {
				allStrings = false
				break
			}
		}
		if allStrings {
			out := make(map[string]any, len(t))
			for k, vv := range t {
				out[k.(string)] = yamlNormalizeValue(vv)
			}
			return out
		}
		out := make(map[any]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
