package validkit

import "github.com/reoring/validkit/internal/coerce"

const sampleString = "example"

// Sample builds representative data for s without any input. Each node yields
// its default, else its first example, else a dummy of its kind ("example",
// 0, 0.0, false, or the first enum choice). Lists hold one sampled element and
// keyed maps one sampled entry. The result is freshly allocated on every call.
func Sample(s Schema) any {
	switch sc := resolve(s).(type) {
	case Kind:
		return sampleNode(NodeOf(sc))
	case Node:
		return sampleNode(sc)
	case ObjectSchema:
		out := make(map[string]any, len(sc.fields))
		for _, f := range sc.fields {
			out[f.name] = Sample(f.schema)
		}
		return out
	default:
		return nil
	}
}

func sampleNode(n Node) any {
	if n.hasDefault {
		return coerce.Clone(n.def)
	}
	if len(n.examples) > 0 {
		return coerce.Clone(n.examples[0])
	}
	switch n.kind {
	case KindString, KindInt, KindFloat, KindBool:
		return dummy(n.kind)
	case KindEnum:
		if len(n.choices) == 0 {
			return nil
		}
		return coerce.Clone(n.choices[0])
	case KindList:
		return []any{Sample(n.item)}
	case KindMap:
		if n.keyKind == KindString || n.keyKind == KindAny {
			return map[string]any{"key": Sample(n.value)}
		}
		return map[any]any{dummy(n.keyKind): Sample(n.value)}
	default:
		return nil
	}
}

func dummy(k Kind) any {
	switch k {
	case KindString:
		return sampleString
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	case KindBool:
		return false
	default:
		return nil
	}
}
