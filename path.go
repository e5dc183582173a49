package validkit

import (
	"fmt"
	"strconv"
)

// Path is the location of a value inside the validated document. Map keys are
// joined with "."; sequence indices are appended as "[i]" without a dot.
type Path string

// Root is the empty path of the top-level value.
const Root Path = ""

// Field descends into a map key.
func (p Path) Field(key any) Path {
	k := fmt.Sprint(key)
	if p == Root {
		return Path(k)
	}
	return p + "." + Path(k)
}

// Index descends into a sequence element.
func (p Path) Index(i int) Path {
	return p + Path("["+strconv.Itoa(i)+"]")
}

func (p Path) String() string { return string(p) }

// Issue creates an Issue at p. kv is read as alternating key/value params.
func (p Path) Issue(code, msg string, value any, kv ...any) Issue {
	var m map[string]any
	if len(kv) >= 2 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: string(p), Code: code, Message: msg, Value: value, Params: m}
}
