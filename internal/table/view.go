package table

// view.go ties the pipeline together. A View owns one page's selections
// (search, filters, sort, current page) and re-derives the whole
// search -> filter -> sort -> paginate pipeline from scratch on every call
// to Derive. There is no cached intermediate state to go stale: the derived
// view is a pure function of the inputs held at that moment.

import (
	"fmt"
	"io"
	"time"
)

// Params configures a View. All fields except PageSize and Columns are
// optional.
type Params struct {
	Columns           []Column
	FilterFields      []FilterField // Absence disables advanced filtering
	PageSize          int           // Rows per page, fixed for the view's lifetime
	TableName         string        // Used only for export filenames
	SearchPlaceholder string        // Passed through to presentation
	Exportable        bool
}

// View holds one dashboard page's table state. Not safe for concurrent use;
// each page owns its own instance.
type View struct {
	params  Params
	data    []Record
	search  SearchState
	filters FilterSet
	sort    Sort
	page    int

	fieldByKey map[string]FilterField
}

// DerivedView is one recomputation of the pipeline.
type DerivedView struct {
	Rows     []Record // Current page of the filtered, sorted collection
	Filtered []Record // Full filtered, sorted collection (export order)

	TotalRows     int // Size of the raw collection
	FilteredTotal int // Size after search and filters

	Page       int
	PageSize   int
	TotalPages int
	PageList   []int // Windowed page indices, Ellipsis for gaps

	Sort   Sort
	Search SearchState
}

// NoData reports the "nothing loaded" state, as opposed to NoResults.
func (d DerivedView) NoData() bool { return d.TotalRows == 0 }

// NoResults reports that data exists but the current query excludes all of
// it. Pages show "no results for this query" here rather than "no data".
func (d DerivedView) NoResults() bool {
	return d.TotalRows > 0 && d.FilteredTotal == 0
}

// NewView validates the descriptors and returns a View with no data and
// inert selections. Column keys must be unique: two columns reading the same
// underlying field must use distinct keys and set Field instead.
func NewView(p Params) (*View, error) {
	if p.PageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", p.PageSize)
	}
	if len(p.Columns) == 0 {
		return nil, fmt.Errorf("at least one column is required")
	}

	seen := make(map[string]bool, len(p.Columns))
	for _, col := range p.Columns {
		if col.Key == "" {
			return nil, fmt.Errorf("column key must not be empty")
		}
		if seen[col.Key] {
			return nil, fmt.Errorf("duplicate column key: %q", col.Key)
		}
		seen[col.Key] = true
	}

	fields := make(map[string]FilterField, len(p.FilterFields))
	for _, ff := range p.FilterFields {
		if _, err := ZeroValue(ff.Kind); err != nil {
			return nil, fmt.Errorf("filter field %q: %w", ff.Key, err)
		}
		if _, dup := fields[ff.Key]; dup {
			return nil, fmt.Errorf("duplicate filter field key: %q", ff.Key)
		}
		fields[ff.Key] = ff
	}

	return &View{
		params:     p,
		filters:    make(FilterSet),
		page:       1,
		fieldByKey: fields,
	}, nil
}

// Columns returns the view's column descriptors.
func (v *View) Columns() []Column { return v.params.Columns }

// FilterFields returns the view's filter field descriptors.
func (v *View) FilterFields() []FilterField { return v.params.FilterFields }

// Exportable reports whether export is enabled for this view.
func (v *View) Exportable() bool { return v.params.Exportable }

// SetData replaces the record collection. The current page is re-clamped on
// the next Derive; selections are otherwise kept so a background refresh
// does not discard the user's query.
func (v *View) SetData(recs []Record) {
	v.data = recs
}

// SetSearch replaces the search term and scope and resets to page 1.
func (v *View) SetSearch(term, scope string) {
	if scope == "" {
		scope = ScopeAll
	}
	v.search = SearchState{Term: term, Scope: scope}
	v.page = 1
}

// SetFilter sets the value for a declared filter field and resets to page 1.
// The value's kind must match the field's declared kind.
func (v *View) SetFilter(key string, fv FilterValue) error {
	ff, ok := v.fieldByKey[key]
	if !ok {
		return fmt.Errorf("unknown filter field: %q", key)
	}
	if fv != nil && fv.Kind() != ff.Kind {
		return fmt.Errorf("filter %q: got kind %q, field declares %q", key, fv.Kind(), ff.Kind)
	}
	v.filters[key] = fv
	v.page = 1
	return nil
}

// ClearFilters removes every filter value and resets to page 1.
func (v *View) ClearFilters() {
	v.filters = make(FilterSet)
	v.page = 1
}

// SetSort sets the sort directive directly and resets to page 1.
func (v *View) SetSort(s Sort) {
	v.sort = s
	v.page = 1
}

// ToggleSort applies a header click: same key already ascending flips to
// descending, anything else sorts that key ascending. Resets to page 1.
func (v *View) ToggleSort(key string) {
	v.sort = v.sort.toggled(key)
	v.page = 1
}

// SetPage requests a page change. Requests outside [1, totalPages] are
// rejected and leave the current page untouched.
func (v *View) SetPage(page int) bool {
	total := totalPages(len(v.filter()), v.params.PageSize)
	if page < 1 || page > total {
		return false
	}
	v.page = page
	return true
}

// Derive recomputes the full pipeline over the current inputs. It never
// mutates the underlying collection and is safe to call any number of times.
func (v *View) Derive() DerivedView {
	filtered := sortRecords(v.filter(), v.sort)

	total := totalPages(len(filtered), v.params.PageSize)
	page := clampPage(v.page, total)

	return DerivedView{
		Rows:          pageSlice(filtered, page, v.params.PageSize),
		Filtered:      filtered,
		TotalRows:     len(v.data),
		FilteredTotal: len(filtered),
		Page:          page,
		PageSize:      v.params.PageSize,
		TotalPages:    total,
		PageList:      pageList(total, page),
		Sort:          v.sort,
		Search:        v.search,
	}
}

// filter applies search and the active filter set, preserving input order.
func (v *View) filter() []Record {
	out := make([]Record, 0, len(v.data))
	for _, rec := range v.data {
		if !matchesSearch(rec, v.search, v.params.Columns) {
			continue
		}
		if !v.filters.matches(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Export serializes the current filtered, sorted collection to w in the
// given format. The artifact always reflects the filters, search, and sort
// in effect now, never the raw collection.
func (v *View) Export(w io.Writer, f Format) error {
	d := v.Derive()
	switch f {
	case FormatJSON:
		return WriteJSON(w, d.Filtered)
	default:
		return WriteCSV(w, d.Filtered, v.params.Columns)
	}
}

// ExportFilename names the download artifact for this view.
func (v *View) ExportFilename(f Format) string {
	return ExportFilename(v.params.TableName, f, time.Now())
}
