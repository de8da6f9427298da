package table

// sort.go orders the filtered collection. The comparator classifies each
// pair of values independently: numbers compare numerically, date-parseable
// values by timestamp, everything else as case-insensitive strings. Missing
// values sort after present ones in either direction, so a null amount never
// leads a descending amount column.

import (
	"sort"
	"strings"
)

// sortRecords returns a stably sorted copy of recs. The input slice is never
// reordered; with no active sort the copy preserves input order.
func sortRecords(recs []Record, s Sort) []Record {
	out := make([]Record, len(recs))
	copy(out, recs)

	if !s.Active() {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compareValues(out[i][s.Key], out[j][s.Key], s.Dir) < 0
	})
	return out
}

// compareValues orders two field values under the given direction. Nulls are
// handled before the direction flip so they stay last in display order.
func compareValues(a, b any, dir Direction) int {
	aNil, bNil := a == nil, b == nil
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}

	c := classifyCompare(a, b)
	if dir == Desc {
		return -c
	}
	return c
}

// classifyCompare picks a comparison strategy for one pair of non-nil
// values: numeric, then date, then case-insensitive string.
func classifyCompare(a, b any) int {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	if at, ok := asTime(a); ok {
		if bt, ok := asTime(b); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	as := strings.ToLower(Stringify(a))
	bs := strings.ToLower(Stringify(b))
	return strings.Compare(as, bs)
}

// toggled applies the interactive sort rule for a header click: clicking the
// column already sorted ascending flips it to descending; clicking anything
// else sorts that column ascending.
func (s Sort) toggled(key string) Sort {
	if s.Key == key && s.Dir == Asc {
		return Sort{Key: key, Dir: Desc}
	}
	return Sort{Key: key, Dir: Asc}
}
