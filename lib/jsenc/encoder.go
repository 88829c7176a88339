// Package jsenc writes configuration values as script object-notation
// literals for the editor's initialization calls.
//
// The output is close to JSON but not the same: Raw values and references
// into the editor namespace are written unquoted, and Text that is already
// wrapped in brackets passes through as a hand-written literal.
package jsenc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrTooDeep          = errors.New("jsenc: value nesting exceeds maximum depth")
	ErrUnsupportedValue = errors.New("jsenc: unsupported value kind")
)

// DefaultNamespace is the editor's root script namespace.
const DefaultNamespace = "CKEDITOR"

// DefaultMaxDepth bounds the nesting of objects and lists.
const DefaultMaxDepth = 64

// Default is the encoder used by the package-level functions.
var Default = &Encoder{Namespace: DefaultNamespace, MaxDepth: DefaultMaxDepth}

// bracketed matches text that opens with [ or { and closes with ] or }.
// Brackets are not checked for pairing.
var bracketed = regexp.MustCompile(`^[\[{].*[\]}]$`)

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`/`, `\/`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\b", `\b`,
	"\f", `\f`,
	`"`, `\"`,
)

// Encoder converts Values to script literals. The zero value uses the
// default namespace and depth.
type Encoder struct {
	// Namespace is the editor's root symbol. Text starting with
	// Namespace + "." (any case) is written as a symbol reference.
	Namespace string
	// MaxDepth is the deepest allowed nesting of objects and lists.
	MaxDepth int
}

// Encode writes v with the default encoder. It never fails: unsupported
// values and over-deep graphs produce an empty string.
func Encode(v Value) string {
	return Default.Encode(v)
}

// Marshal writes v with the default encoder and reports unsupported values
// and over-deep graphs as errors.
func Marshal(v Value) (string, error) {
	return Default.Marshal(v)
}

// EncodeAny converts a plain Go value with ValueOf and encodes it.
func EncodeAny(v any) string {
	return Default.Encode(ValueOf(v))
}

// Encode writes v as a script literal.
//
// Unsupported leaves are written as empty strings, matching the permissive
// behavior callers rely on. If the graph is deeper than MaxDepth the whole
// result is empty.
func (e *Encoder) Encode(v Value) string {
	var sb strings.Builder
	if err := e.write(&sb, v, 0, false); err != nil {
		return ""
	}
	return sb.String()
}

// Marshal is like Encode but fails on unsupported values and over-deep
// graphs instead of degrading.
func (e *Encoder) Marshal(v Value) (string, error) {
	var sb strings.Builder
	if err := e.write(&sb, v, 0, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Encoder) namespace() string {
	if e.Namespace == "" {
		return DefaultNamespace
	}
	return e.Namespace
}

func (e *Encoder) maxDepth() int {
	if e.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return e.MaxDepth
}

func (e *Encoder) write(sb *strings.Builder, v Value, depth int, strict bool) error {
	if depth > e.maxDepth() {
		return ErrTooDeep
	}

	switch x := v.(type) {
	case nil, null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(x)))
	case Number:
		sb.WriteString(formatNumber(x))
	case Raw:
		sb.WriteString(strings.TrimPrefix(string(x), RawPrefix))
	case Text:
		sb.WriteString(e.text(string(x)))
	case Object:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(e.text(k))
			sb.WriteByte(':')
			if err := e.write(sb, x[k], depth+1, strict); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case Members:
		sb.WriteByte('{')
		for i, m := range x {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(e.text(m.Key))
			sb.WriteByte(':')
			if err := e.write(sb, m.Value, depth+1, strict); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case List:
		sb.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := e.write(sb, item, depth+1, strict); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case Unsupported:
		if strict {
			return fmt.Errorf("%w: %s", ErrUnsupportedValue, x.Type)
		}
	default:
		if strict {
			return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}
	}
	return nil
}

// text writes a string value. Three cases are not quoted: the raw sentinel,
// namespace references, and text that already looks like an array or object
// literal once escaped.
func (e *Encoder) text(s string) string {
	if strings.HasPrefix(s, RawPrefix) {
		return s[len(RawPrefix):]
	}

	prefix := e.namespace() + "."
	if len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s
	}

	escaped := textEscaper.Replace(s)
	if bracketed.MatchString(escaped) {
		return escaped
	}
	return `"` + escaped + `"`
}

func formatNumber(n Number) string {
	if n.Kind == KindInt {
		return strconv.FormatInt(n.Int, 10)
	}

	f := n.Float
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	// Same switch to exponent form as the script's own number formatting.
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strings.ReplaceAll(strconv.FormatFloat(f, 'g', -1, 64), ",", ".")
	}

	// Whole floats keep a fraction digit so they read back as floats.
	out := strings.ReplaceAll(strconv.FormatFloat(f, 'f', -1, 64), ",", ".")
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
