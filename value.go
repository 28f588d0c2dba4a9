package tably

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

// Value is a closed representation of a single cell: null, a scalar, an
// ordered sequence, or an ordered string-keyed mapping. The zero Value is
// null.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	seq     []Value
	entries []Entry
}

// Entry is one key-value pair of a Mapping. Entry order is the order the
// pairs appeared in the source document.
type Entry struct {
	Key   string
	Value Value
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean payload. Valid only for Kind Bool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Valid only for Kind Number.
func (v Value) Number() float64 { return v.n }

// Str returns the string payload. Valid only for Kind String.
func (v Value) Str() string { return v.s }

// Seq returns the element slice. Valid only for Kind Sequence.
func (v Value) Seq() []Value { return v.seq }

// Entries returns the ordered key-value pairs. Valid only for Kind Mapping.
func (v Value) Entries() []Entry { return v.entries }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NumberValue wraps a float64.
func NumberValue(n float64) Value { return Value{kind: Number, n: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// SequenceValue wraps an element slice.
func SequenceValue(seq ...Value) Value { return Value{kind: Sequence, seq: seq} }

// MappingValue wraps ordered key-value pairs.
func MappingValue(entries ...Entry) Value { return Value{kind: Mapping, entries: entries} }

// ValueOf converts a decoded JSON value (as produced by encoding/json into
// any) into a Value. Integer types are widened to float64 so numbers compare
// and print consistently regardless of how the caller decoded them. Go maps
// do not preserve document order, so Mapping entries from this path are in
// sorted key order. Unrecognized types become their fmt-style string form;
// in practice inputs are the standard decode types.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case bool:
		return BoolValue(x)
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	case int:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return NumberValue(f)
		}
		return StringValue(x.String())
	case string:
		return StringValue(x)
	case []any:
		seq := make([]Value, len(x))
		for i, el := range x {
			seq[i] = ValueOf(el)
		}
		return Value{kind: Sequence, seq: seq}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = Entry{Key: k, Value: ValueOf(x[k])}
		}
		return Value{kind: Mapping, entries: entries}
	default:
		return StringValue(fmt.Sprintf("%v", v))
	}
}
