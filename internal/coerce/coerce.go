// Package coerce holds the value-level helpers behind kind checks and
// best-effort conversions. It works on plain Go values (maps, slices, scalars)
// and knows nothing about schemas.
package coerce

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// IsInt reports whether v is a Go integer (bool excluded).
func IsInt(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether v is a float32 or float64.
func IsFloat(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsString reports whether v has an underlying string type.
func IsString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

// IsBool reports whether v has an underlying bool type.
func IsBool(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

// IsList reports whether v is a slice or array (strings and byte strings are not lists).
func IsList(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsMap reports whether v is a map of any key type.
func IsMap(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// KindName names the kind of v for error messages.
func KindName(v any) string {
	switch {
	case v == nil:
		return "null"
	case IsBool(v):
		return "bool"
	case IsInt(v):
		return "int"
	case IsFloat(v):
		return "float"
	case IsString(v):
		return "string"
	case IsList(v):
		return "list"
	case IsMap(v):
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ToFloat64 widens an integer or float to float64.
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// String converts v to its string form. Values that already are strings and
// nil are returned unchanged.
func String(v any) any {
	if v == nil || IsString(v) {
		return v
	}
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Int converts v to int. On failure v is returned unchanged and ok is false,
// so the caller's type check reports the real mismatch.
func Int(v any) (out any, ok bool) {
	if IsInt(v) {
		return v, true
	}
	if IsString(v) {
		s := strings.TrimSpace(reflect.ValueOf(v).String())
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return v, false
		}
		return int(n), true
	}
	if IsFloat(v) {
		f, _ := ToFloat64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
			return v, false
		}
		return int(math.Trunc(f)), true
	}
	return v, false
}

// Float converts v to float64. On failure v is returned unchanged.
func Float(v any) (out any, ok bool) {
	if IsFloat(v) {
		return v, true
	}
	if IsString(v) {
		s := strings.TrimSpace(reflect.ValueOf(v).String())
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, false
		}
		return f, true
	}
	if IsInt(v) {
		f, _ := ToFloat64(v)
		return f, true
	}
	return v, false
}

// Bool maps well-known truthy and falsy spellings onto a bool. Strings are
// matched case-insensitively against true/1/yes/on and false/0/no/off, numbers
// equal to 1 or 0 map to true or false. Anything else is returned unchanged.
func Bool(v any) (out any, ok bool) {
	if IsBool(v) {
		return v, true
	}
	if IsString(v) {
		switch strings.ToLower(reflect.ValueOf(v).String()) {
		case "true", "1", "yes", "on":
			return true, true
		case "false", "0", "no", "off":
			return false, true
		}
		return v, false
	}
	if f, isNum := ToFloat64(v); isNum {
		switch f {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return v, false
}

// Equal compares two plain values. Numbers compare by value across integer
// and float types; everything else uses reflect.DeepEqual.
func Equal(a, b any) bool {
	if (IsInt(a) || IsFloat(a)) && (IsInt(b) || IsFloat(b)) {
		if IsInt(a) && IsInt(b) {
			return intEqual(reflect.ValueOf(a), reflect.ValueOf(b))
		}
		fa, _ := ToFloat64(a)
		fb, _ := ToFloat64(b)
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func intEqual(a, b reflect.Value) bool {
	aSigned := a.Kind() >= reflect.Int && a.Kind() <= reflect.Int64
	bSigned := b.Kind() >= reflect.Int && b.Kind() <= reflect.Int64
	switch {
	case aSigned && bSigned:
		return a.Int() == b.Int()
	case !aSigned && !bSigned:
		return a.Uint() == b.Uint()
	case aSigned:
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}
