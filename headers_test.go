package tably_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tably"
)

func TestDeriveHeaders(t *testing.T) {
	t.Parallel()
	rows := tably.Normalize([]any{
		map[string]any{"a": 1, "b": 2, "_meta": "x"},
	})
	tests := map[string]struct {
		rows    []tably.Row
		include []string
		want    []string
	}{
		"union excludes reserved": {rows: rows, include: nil, want: []string{"a", "b"}},
		"include order authoritative": {
			rows: rows, include: []string{"b", "a", "z"}, want: []string{"b", "a"},
		},
		"include can reach reserved": {
			rows: rows, include: []string{"_meta"}, want: []string{"_meta"},
		},
		"include deduplicates": {
			rows: rows, include: []string{"a", "a", "b"}, want: []string{"a", "b"},
		},
		"empty rows": {rows: nil, include: []string{"a"}, want: nil},
		"empty include": {
			rows: rows, include: []string{}, want: nil,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tably.DeriveHeaders(tt.rows, tt.include))
		})
	}
}

func TestDeriveHeadersFirstSeenAcrossRows(t *testing.T) {
	t.Parallel()
	rows := tably.NormalizeJSON([]byte(`[{"a":1,"b":2},{"c":3,"a":4},{"b":5,"d":6}]`))
	assert.Equal(t, []string{"a", "b", "c", "d"}, tably.DeriveHeaders(rows, nil))
}
