// Package source supplies record collections to the table engine. It owns
// the declarative page registry and the PostgreSQL fetch path; the engine
// itself never touches the database.
package source

import (
	"context"

	"github.com/gridworks/tabular/internal/table"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Page is the declarative descriptor for one dashboard page: where its rows
// come from and how the table engine should present them. Everything a page
// needs is data; no per-page handler code exists.
type Page struct {
	// Key uniquely identifies the page in routes: "customers"
	Key string

	// Title is the display name: "Customers"
	Title string

	// TableName names the export artifacts ({TableName}_{date}.csv)
	TableName string

	// Query is the SQL that loads the page's rows. It should select plain
	// columns; the engine derives everything else in memory.
	Query string

	// Columns are the displayed columns, in order.
	Columns []table.Column

	// FilterFields declares the advanced filters. Empty disables filtering.
	FilterFields []table.FilterField

	// SearchPlaceholder is passed through to presentation.
	SearchPlaceholder string

	// Exportable enables the CSV/JSON download endpoints for this page.
	Exportable bool

	// PageSize overrides the configured default when positive.
	PageSize int
}

// NewView builds a table view from the page descriptor. pageSize is the
// configured default, used when the page does not set its own.
func (p Page) NewView(pageSize int) (*table.View, error) {
	if p.PageSize > 0 {
		pageSize = p.PageSize
	}
	return table.NewView(table.Params{
		Columns:           p.Columns,
		FilterFields:      p.FilterFields,
		PageSize:          pageSize,
		TableName:         p.TableName,
		SearchPlaceholder: p.SearchPlaceholder,
		Exportable:        p.Exportable,
	})
}
