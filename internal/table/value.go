package table

// value.go classifies field values for filtering and sorting.
//
// Columns carry no type declarations, so classification happens per value:
// numeric types and numeric strings compare as numbers, time.Time values and
// date-shaped strings compare as timestamps, and everything else falls back
// to case-insensitive string comparison. Handles the messy reality of
// business data: mixed column types, absent fields, and date strings in
// several regional formats.

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts accepted when classifying a string as a date, unambiguous
// formats first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006", "01/02/2006",
	"1-2-2006", "01-02-2006",
	"Jan 2, 2006", "2 Jan 2006",
}

// asNumber attempts to interpret a field value as a number.
func asNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asTime attempts to interpret a field value as a point in time.
// Purely numeric strings are not dates; they classify as numbers first.
func asTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// isTruthy reports whether a field value counts as "set" for checkbox
// filtering: true booleans, non-zero numbers, non-empty strings.
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	default:
		if n, ok := asNumber(v); ok {
			return n != 0
		}
		return true
	}
}

// parseBound parses a range bound carried as a string. Empty or unparseable
// bounds impose no constraint.
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseDateBound parses a date bound carried as a string. Empty or
// unparseable bounds impose no constraint.
func parseDateBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fallbackString(v any) string {
	return fmt.Sprintf("%v", v)
}
