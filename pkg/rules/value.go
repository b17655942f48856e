package rules

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// Value is a typed extra property carried on rules and matched spans.
// Rule files may attach arbitrary fields beyond the known ones; those are
// normalized into this tagged union instead of living in an ambient
// extension registry.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	List  []Value
	Map   map[string]Value
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Zero returns the zero value of the same kind, used to default extra
// properties on spans whose rule did not set them.
func (v Value) Zero() Value {
	switch v.Kind {
	case KindList:
		return Value{Kind: KindList, List: []Value{}}
	case KindMap:
		return Value{Kind: KindMap, Map: map[string]Value{}}
	default:
		return Value{Kind: v.Kind}
	}
}

// valueOf converts a decoded JSON/YAML scalar or container into a Value.
// JSON numbers always arrive as float64; whole floats are folded to ints so
// both decoders produce the same Value.
func valueOf(raw any) Value {
	switch v := raw.(type) {
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case int:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case float64:
		if v == float64(int64(v)) {
			return IntValue(int64(v))
		}
		return FloatValue(v)
	case []any:
		list := make([]Value, 0, len(v))
		for _, el := range v {
			list = append(list, valueOf(el))
		}
		return Value{Kind: KindList, List: list}
	case map[string]any:
		m := make(map[string]Value, len(v))
		for k, el := range v {
			m[k] = valueOf(el)
		}
		return Value{Kind: KindMap, Map: m}
	default:
		return Value{Kind: KindString}
	}
}
