// Package table implements the tabular data engine behind every dashboard
// page: search, filtering, sorting, pagination, and export over an in-memory
// collection of records, driven entirely by declarative column and filter
// descriptors. The package performs no I/O; callers supply the record
// collection and consume the derived view.
package table

import (
	"strconv"
	"strings"
	"time"
)

// Record is one row of data: a field-name-to-value mapping. Values are the
// scalars a database row scan produces: string, float64, int64, bool,
// time.Time, or nil for missing fields. Records are never mutated by the
// engine.
type Record map[string]any

// RenderFunc produces presentation output for a cell. The engine passes it
// through untouched; search, sort, and export always use the raw field value.
type RenderFunc func(value any, rec Record) string

// Column describes one displayed column.
type Column struct {
	Key    string     // Unique identifier within the view
	Label  string     // Display name, used as the CSV header
	Field  string     // Source field name; defaults to Key when empty
	Render RenderFunc // Optional presentation callback
}

// fieldKey returns the record field this column reads.
func (c Column) fieldKey() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Key
}

// Cell returns the presentation value for a record: the Render output when
// set, otherwise the stringified raw field value.
func (c Column) Cell(rec Record) string {
	v := rec[c.fieldKey()]
	if c.Render != nil {
		return c.Render(v, rec)
	}
	return Stringify(v)
}

// Option is one selectable choice for select filter kinds.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterField describes one filterable field and which of the seven filter
// kinds applies to it.
type FilterField struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Kind    FilterKind `json:"kind"`
	Options []Option   `json:"options,omitempty"` // For select kinds
	Min     float64    `json:"min,omitempty"`     // For slider/range kinds
	Max     float64    `json:"max,omitempty"`
	Step    float64    `json:"step,omitempty"`
}

// ScopeAll searches every column rather than a single one.
const ScopeAll = "all"

// SearchState is the current search term and the column it applies to.
type SearchState struct {
	Term  string `json:"term"`
	Scope string `json:"scope"` // ScopeAll or a column key
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the single active sort directive. The zero value means unsorted.
type Sort struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

// Active reports whether a sort is in effect.
func (s Sort) Active() bool { return s.Key != "" }

// Stringify renders a scalar field value for search, equality, and CSV
// export. Missing values render as the empty string, floats without trailing
// zeros, and timestamps as ISO dates.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		// Fall back to the fmt default for anything exotic
		return fallbackString(val)
	}
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
