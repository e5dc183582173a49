package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	j "github.com/goccy/go-json"
)

// JSON decodes a single JSON document.
func JSON(b []byte) (any, error) {
	return ReadJSON(bytes.NewReader(b))
}

// ReadJSON decodes a single JSON document from r. Trailing data after the
// document is an error.
func ReadJSON(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	var extra j.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: decode json: unexpected data after top-level value")
	}
	return normalizeJSON(v), nil
}

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeJSON(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	case j.Number:
		return number(string(t))
	default:
		return v
	}
}

// number keeps integral literals as int and everything else as float64.
func number(lit string) any {
	n := j.Number(lit)
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return lit
}
