package tably

import "sort"

// Row is one displayable record: an ordered mapping from field name to cell
// value. Field order is the order the fields appeared in the source document
// (or sorted when the source was a Go map, which has no order to keep).
type Row struct {
	keys   []string
	fields map[string]Value
}

// RowFromMap builds a Row from a decoded JSON object. Keys are sorted for
// deterministic field order.
func RowFromMap(m map[string]any) Row {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := Row{fields: make(map[string]Value, len(m))}
	for _, k := range keys {
		r.appendField(k, ValueOf(m[k]))
	}
	return r
}

func (r *Row) appendField(key string, v Value) {
	if r.fields == nil {
		r.fields = make(map[string]Value)
	}
	if _, dup := r.fields[key]; !dup {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
}

// Keys returns the field names in source order. The returned slice is shared;
// callers must not modify it.
func (r Row) Keys() []string { return r.keys }

// Get returns the value for key and whether the field exists.
func (r Row) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Len returns the number of fields.
func (r Row) Len() int { return len(r.keys) }
