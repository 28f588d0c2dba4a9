package tably

import "github.com/tidwall/gjson"

// envelopePaths are the legacy wrapper shapes the list API has shipped over
// the years, most specific first. The nested d.results shape must win over
// the flatter ones so that objects matching several patterns resolve to the
// oldest known format.
var envelopePaths = []string{"d.results", "results", "d"}

// Normalize extracts the row sequence from a decoded RawInput value. It
// accepts a bare array, {results: [...]}, {d: [...]}, or {d: {results:
// [...]}} and returns an empty sequence for anything else, including nil.
// Array elements that are not objects are skipped. Normalize never panics.
func Normalize(input any) []Row {
	switch x := input.(type) {
	case map[string]any:
		if d, ok := x["d"].(map[string]any); ok {
			if res, ok := d["results"].([]any); ok {
				return rowsOf(res)
			}
		}
		if res, ok := x["results"].([]any); ok {
			return rowsOf(res)
		}
		if res, ok := x["d"].([]any); ok {
			return rowsOf(res)
		}
		return nil
	case []any:
		return rowsOf(x)
	default:
		return nil
	}
}

// NormalizeJSON extracts the row sequence directly from raw JSON bytes.
// Unlike Normalize it keeps the field order of the source document, which is
// what gives header derivation its first-seen column order. Invalid JSON
// normalizes to an empty sequence.
func NormalizeJSON(data []byte) []Row {
	if !gjson.ValidBytes(data) {
		return nil
	}
	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return rowsOfResult(root)
	}
	if !root.IsObject() {
		return nil
	}
	for _, path := range envelopePaths {
		if res := root.Get(path); res.IsArray() {
			return rowsOfResult(res)
		}
	}
	return nil
}

func rowsOf(elems []any) []Row {
	rows := make([]Row, 0, len(elems))
	for _, el := range elems {
		if m, ok := el.(map[string]any); ok {
			rows = append(rows, RowFromMap(m))
		}
	}
	return rows
}

func rowsOfResult(arr gjson.Result) []Row {
	var rows []Row
	arr.ForEach(func(_, el gjson.Result) bool {
		if el.IsObject() {
			var r Row
			el.ForEach(func(key, val gjson.Result) bool {
				r.appendField(key.String(), valueOfResult(val))
				return true
			})
			rows = append(rows, r)
		}
		return true
	})
	return rows
}

func valueOfResult(res gjson.Result) Value {
	switch res.Type {
	case gjson.Null:
		return Value{}
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return NumberValue(res.Float())
	case gjson.String:
		return StringValue(res.String())
	default:
		if res.IsArray() {
			var seq []Value
			res.ForEach(func(_, el gjson.Result) bool {
				seq = append(seq, valueOfResult(el))
				return true
			})
			return Value{kind: Sequence, seq: seq}
		}
		var entries []Entry
		res.ForEach(func(key, val gjson.Result) bool {
			entries = append(entries, Entry{Key: key.String(), Value: valueOfResult(val)})
			return true
		})
		return Value{kind: Mapping, entries: entries}
	}
}
