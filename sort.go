package tably

import (
	"sort"
	"strings"
)

// OrderDesc inverts the comparison; any other order string means ascending.
const OrderDesc = "desc"

// SortSpec selects the sort field and direction for a render.
type SortSpec struct {
	Field string `yaml:"field" json:"field"`
	Order string `yaml:"order" json:"order"`
}

// Desc reports whether the spec requests descending order.
func (s SortSpec) Desc() bool { return strings.EqualFold(s.Order, OrderDesc) }

// SortRows returns rows ordered by spec. A nil spec passes rows through
// unchanged. The sort is stable: equal keys keep their input order. Rows
// missing the sort field sort first when ascending and last when descending.
// The input slice is not modified.
func SortRows(rows []Row, spec *SortSpec) []Row {
	if spec == nil || len(rows) == 0 {
		return rows
	}
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	desc := spec.Desc()
	sort.SliceStable(sorted, func(i, j int) bool {
		a, okA := sorted[i].Get(spec.Field)
		b, okB := sorted[j].Get(spec.Field)
		var cmp int
		switch {
		case !okA && !okB:
			return false
		case !okA:
			cmp = -1
		case !okB:
			cmp = 1
		default:
			cmp = compareValues(a, b)
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// kindRank gives values of different kinds a fixed relative order so that
// heterogeneous columns still sort deterministically.
func kindRank(k Kind) int {
	switch k {
	case Null:
		return 0
	case Bool:
		return 1
	case Number:
		return 2
	case String:
		return 3
	case Sequence:
		return 4
	default:
		return 5
	}
}

// compareValues returns -1, 0, or 1. Strings that both match the strict
// ISO-8601 date-time pattern compare as timestamps; everything else compares
// by its natural ordering within a kind, and by kind rank across kinds.
func compareValues(a, b Value) int {
	if a.kind == String && b.kind == String {
		if ta, okA := parseISOTime(a.s); okA {
			if tb, okB := parseISOTime(b.s); okB {
				return ta.Compare(tb)
			}
		}
	}
	if ra, rb := kindRank(a.kind), kindRank(b.kind); ra != rb {
		return sign(ra - rb)
	}
	switch a.kind {
	case Null:
		return 0
	case Bool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	case Number:
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		default:
			return 0
		}
	case String:
		return strings.Compare(a.s, b.s)
	default:
		// Composite values compare by their canonical display form.
		return strings.Compare(FormatValue(a, FormatConfig{}), FormatValue(b, FormatConfig{}))
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
