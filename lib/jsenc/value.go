package jsenc

import (
	"fmt"
	"math"
)

// Value is a configuration value that can be written as a script literal.
//
// The set of variants is closed: Text, Number, Bool, Object, Members, List,
// Raw, Null and Unsupported. Values are treated as immutable once built, so
// containers may share them freely.
type Value interface {
	jsValue()
}

// Text is a string value. It is quoted and escaped on output unless it is a
// reference into the editor namespace, starts with the raw sentinel "@@",
// or is wrapped in brackets (see Encoder).
type Text string

// NumberKind records whether a Number was built from an integer or a float.
type NumberKind uint8

const (
	KindInt NumberKind = iota
	KindFloat
)

// Number is a numeric value that keeps its original kind for formatting.
type Number struct {
	Kind  NumberKind
	Int   int64
	Float float64
}

// Int returns an integer Number.
func Int(n int64) Number {
	return Number{Kind: KindInt, Int: n}
}

// Float returns a floating point Number.
func Float(f float64) Number {
	return Number{Kind: KindFloat, Float: f}
}

// Float64 returns the number as a float64 regardless of kind.
func (n Number) Float64() float64 {
	if n.Kind == KindInt {
		return float64(n.Int)
	}
	return n.Float
}

// Bool is a boolean value.
type Bool bool

// Object is an unordered mapping. Keys are written in sorted order so the
// output is stable between renders.
type Object map[string]Value

// Member is one key/value pair of an ordered object.
type Member struct {
	Key   string
	Value Value
}

// Members is an object whose keys are written in slice order.
type Members []Member

// List is an ordered sequence.
type List []Value

// Raw is emitted verbatim as script source. A leading "@@" is stripped.
//
// Use it for function bodies or references to symbols defined elsewhere on
// the page:
//
//	jsenc.Raw("function (ev) { console.log(ev.editor.name); }")
type Raw string

// RawPrefix marks a Text value that must be emitted as Raw. Callers that
// cannot construct a Raw value may pre-encode it as "@@" + source.
const RawPrefix = "@@"

type null struct{}

// Null is the null value.
var Null Value = null{}

// Unsupported stands in for a Go value that has no script equivalent.
// It encodes to an empty string.
type Unsupported struct {
	Type string
}

func (Text) jsValue()        {}
func (Number) jsValue()      {}
func (Bool) jsValue()        {}
func (Object) jsValue()      {}
func (Members) jsValue()     {}
func (List) jsValue()        {}
func (Raw) jsValue()         {}
func (null) jsValue()        {}
func (Unsupported) jsValue() {}

// IsNull reports whether v is Null or a nil interface.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(null)
	return ok
}

// ValueOf converts a plain Go value into a Value.
//
// Strings, integers, floats, booleans, string-keyed maps and slices are
// supported, recursively. A Value is returned as is. Anything else becomes
// Unsupported, which encodes to an empty string.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case Value:
		return x
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case map[string]any:
		obj := make(Object, len(x))
		for k, e := range x {
			obj[k] = ValueOf(e)
		}
		return obj
	case map[string]string:
		obj := make(Object, len(x))
		for k, e := range x {
			obj[k] = Text(e)
		}
		return obj
	case []any:
		list := make(List, len(x))
		for i, e := range x {
			list[i] = ValueOf(e)
		}
		return list
	case []string:
		list := make(List, len(x))
		for i, e := range x {
			list[i] = Text(e)
		}
		return list
	case [][]string:
		list := make(List, len(x))
		for i, e := range x {
			list[i] = ValueOf(e)
		}
		return list
	default:
		return Unsupported{Type: fmt.Sprintf("%T", v)}
	}
}

func uintValue(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}
