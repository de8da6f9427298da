package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gridworks/tabular/internal/logging"
	"github.com/gridworks/tabular/internal/source"
	"github.com/gridworks/tabular/internal/table"
)

// PageInfo is the JSON shape describing one registered page.
type PageInfo struct {
	Key               string              `json:"key"`
	Title             string              `json:"title"`
	Columns           []ColumnInfo        `json:"columns"`
	FilterFields      []table.FilterField `json:"filter_fields,omitempty"`
	SearchPlaceholder string              `json:"search_placeholder,omitempty"`
	Exportable        bool                `json:"exportable"`
}

// ColumnInfo is the JSON shape describing one column.
type ColumnInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TableResponse is the JSON shape of one derived table view.
type TableResponse struct {
	Page       string              `json:"page"`
	Rows       []map[string]string `json:"rows"`
	Pagination PaginationInfo      `json:"pagination"`
	Sort       table.Sort          `json:"sort"`
	Search     table.SearchState   `json:"search"`
	NoData     bool                `json:"no_data"`
	NoResults  bool                `json:"no_results"`
}

// PaginationInfo carries the derived pagination state.
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	PageList   []int `json:"page_list"`
}

// handleListPages returns descriptors for every registered page.
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages := source.All()

	infos := make([]PageInfo, len(pages))
	for i, p := range pages {
		cols := make([]ColumnInfo, len(p.Columns))
		for j, c := range p.Columns {
			cols[j] = ColumnInfo{Key: c.Key, Label: c.Label}
		}
		infos[i] = PageInfo{
			Key:               p.Key,
			Title:             p.Title,
			Columns:           cols,
			FilterFields:      p.FilterFields,
			SearchPlaceholder: p.SearchPlaceholder,
			Exportable:        p.Exportable,
		}
	}

	writeJSON(w, infos)
}

// handleTableView derives one page's table view from the current query
// parameters and returns it as JSON.
func (s *Server) handleTableView(w http.ResponseWriter, r *http.Request) {
	p, v, ok := s.pageView(w, r)
	if !ok {
		return
	}

	records, err := s.service.Records(r.Context(), p)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError, "fetch_failed")
		return
	}
	v.SetData(records)
	applyViewParams(r, p, v)

	d := v.Derive()

	rows := make([]map[string]string, len(d.Rows))
	for i, rec := range d.Rows {
		cells := make(map[string]string, len(p.Columns))
		for _, col := range p.Columns {
			cells[col.Key] = col.Cell(rec)
		}
		rows[i] = cells
	}

	writeJSON(w, TableResponse{
		Page: p.Key,
		Rows: rows,
		Pagination: PaginationInfo{
			Page:       d.Page,
			PageSize:   d.PageSize,
			Total:      d.FilteredTotal,
			TotalPages: d.TotalPages,
			PageList:   d.PageList,
		},
		Sort:      d.Sort,
		Search:    d.Search,
		NoData:    d.NoData(),
		NoResults: d.NoResults(),
	})
}

// handleExport serializes the page's current filtered view and delivers it
// as a named download. The artifact honors the same search/filter/sort
// parameters as the table view, never the raw collection.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	p, v, ok := s.pageView(w, r)
	if !ok {
		return
	}
	if !p.Exportable {
		writeError(w, http.StatusForbidden, "export is not enabled for this page")
		return
	}

	format, err := table.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.service.Records(r.Context(), p)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError, "fetch_failed")
		return
	}
	v.SetData(records)
	applyViewParams(r, p, v)

	exportID := uuid.NewString()
	filename := v.ExportFilename(format)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err := v.Export(w, format); err != nil {
		// Headers are already sent; log and give up on this response.
		logging.FromContext(r.Context()).Error("export write failed",
			"page", p.Key,
			"export_id", exportID,
			"error", err,
		)
		return
	}

	d := v.Derive()
	logging.FromContext(r.Context()).Info("export delivered",
		"page", p.Key,
		"export_id", exportID,
		"format", string(format),
		"filename", filename,
		"rows", d.FilteredTotal,
	)
}

// pageView resolves the page key in the route and builds a fresh view for
// it. Writes the error response itself when the page is unknown.
func (s *Server) pageView(w http.ResponseWriter, r *http.Request) (source.Page, *table.View, bool) {
	key := chi.URLParam(r, "pageKey")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing page key")
		return source.Page{}, nil, false
	}

	p, ok := source.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return source.Page{}, nil, false
	}

	v, err := p.NewView(s.defaultPageSize)
	if err != nil {
		// Registration validates descriptors, so this is unreachable for
		// registered pages; fail loudly if it happens anyway.
		respondError(w, r, err, http.StatusInternalServerError, "bad_page")
		return source.Page{}, nil, false
	}
	return p, v, true
}
