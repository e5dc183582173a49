package codec

import (
	"errors"
	"fmt"
	"strings"

	validkit "github.com/reoring/validkit"
)

// ErrEmpty is returned by NonEmpty.
var ErrEmpty = errors.New("must not be empty")

// TrimSpace strips leading and trailing white space.
func TrimSpace() validkit.Transform {
	return stringFunc(strings.TrimSpace)
}

// Lower lower-cases strings.
func Lower() validkit.Transform {
	return stringFunc(strings.ToLower)
}

// NonEmpty rejects empty strings, lists and maps.
func NonEmpty() validkit.Transform {
	return func(v any) (any, error) {
		switch t := v.(type) {
		case string:
			if t == "" {
				return nil, ErrEmpty
			}
		case []any:
			if len(t) == 0 {
				return nil, ErrEmpty
			}
		case map[string]any:
			if len(t) == 0 {
				return nil, ErrEmpty
			}
		case map[any]any:
			if len(t) == 0 {
				return nil, ErrEmpty
			}
		}
		return v, nil
	}
}

func stringFunc(fn func(string) string) validkit.Transform {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return fn(s), nil
	}
}
