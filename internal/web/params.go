// Package web provides the HTTP surface for the dashboard: table view and
// export endpoints over the registered pages. This file parses table state
// from URL query parameters.
package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gridworks/tabular/internal/source"
	"github.com/gridworks/tabular/internal/table"
)

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseSort reads the sort/dir query parameters into a directive. Missing
// sort means unsorted; any dir other than "desc" is ascending.
func parseSort(r *http.Request) table.Sort {
	key := strings.TrimSpace(r.URL.Query().Get("sort"))
	if key == "" {
		return table.Sort{}
	}
	dir := table.Asc
	if strings.TrimSpace(r.URL.Query().Get("dir")) == "desc" {
		dir = table.Desc
	}
	return table.Sort{Key: key, Dir: dir}
}

// parseFilterValue builds a filter value of the declared kind from its raw
// query form. Range kinds carry both bounds in one value split on a colon
// ("min:max", "from:to"); multiSelect is comma-separated. A malformed value
// yields an inert filter, never an error.
func parseFilterValue(kind table.FilterKind, raw string) (table.FilterValue, bool) {
	switch kind {
	case table.KindText:
		return table.Text{Term: raw}, true

	case table.KindSingleSelect:
		return table.SingleSelect{Value: raw}, true

	case table.KindMultiSelect:
		var values []string
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		return table.MultiSelect{Values: values}, true

	case table.KindDateRange:
		from, to := splitRange(raw)
		return table.DateRange{From: from, To: to}, true

	case table.KindNumberRange:
		lo, hi := splitRange(raw)
		return table.NumberRange{Min: lo, Max: hi}, true

	case table.KindSlider:
		return table.Slider{Value: raw}, true

	case table.KindCheckbox:
		return table.Checkbox{Checked: raw == "true" || raw == "1"}, true
	}
	return nil, false
}

// splitRange splits a "lo:hi" range value. A value without a colon is
// treated as a lower bound only.
func splitRange(raw string) (string, string) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// applyViewParams sets the view's search, filters, sort, and page from the
// request query. Unknown filter keys and malformed values are skipped; the
// view stays valid no matter what the query string holds.
func applyViewParams(r *http.Request, p source.Page, v *table.View) {
	q := r.URL.Query()

	if term := q.Get("search"); term != "" {
		v.SetSearch(term, q.Get("scope"))
	}

	fieldByKey := make(map[string]table.FilterField, len(p.FilterFields))
	for _, ff := range p.FilterFields {
		fieldByKey[ff.Key] = ff
	}

	for key, values := range q {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		name := key[7 : len(key)-1]
		ff, ok := fieldByKey[name]
		if !ok {
			continue
		}
		for _, raw := range values {
			if raw == "" {
				continue
			}
			fv, ok := parseFilterValue(ff.Kind, raw)
			if !ok {
				continue
			}
			// Kind always matches the declared field here, so the only
			// SetFilter failure is an undeclared key, already excluded.
			_ = v.SetFilter(name, fv)
		}
	}

	if s := parseSort(r); s.Active() {
		v.SetSort(s)
	}

	if page := parseIntParam(r, "page", 1); page > 1 {
		v.SetPage(page)
	}
}
