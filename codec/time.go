package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	validkit "github.com/reoring/validkit"
)

// TimeRFC3339 converts an RFC3339 string into a time.Time.
func TimeRFC3339() validkit.Transform {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected RFC3339 string, got %T", v)
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return nil, fmt.Errorf("invalid RFC3339 time %q", s)
		}
		return t, nil
	}
}

// FormatRFC3339 renders a time.Time in canonical UTC RFC3339 form. Strings
// pass through, so it can follow TimeRFC3339 to normalize the text.
func FormatRFC3339() validkit.Transform {
	return func(v any) (any, error) {
		switch t := v.(type) {
		case time.Time:
			return formatRFC3339Canonical(t), nil
		case string:
			pt, err := parseRFC3339(t)
			if err != nil {
				return nil, fmt.Errorf("invalid RFC3339 time %q", t)
			}
			return formatRFC3339Canonical(pt), nil
		default:
			return nil, fmt.Errorf("expected time, got %T", v)
		}
	}
}

// Duration converts strings such as "90s", "1h30m" or "7d" into a
// time.Duration. The "d" unit means 24 hours and may only appear alone.
func Duration() validkit.Transform {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected duration string, got %T", v)
		}
		d, err := parseDuration(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
