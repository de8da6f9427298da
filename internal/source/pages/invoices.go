package pages

import (
	"fmt"

	"github.com/gridworks/tabular/internal/source"
	"github.com/gridworks/tabular/internal/table"
)

func init() {
	registerInvoices()
}

func registerInvoices() {
	source.Register(source.Page{
		Key:       "invoices",
		Title:     "Invoices",
		TableName: "invoices",
		Query: `SELECT i.id, i.number, c.name AS customer, i.issued_on, i.due_on,
		               i.amount, i.progress
		          FROM invoices i
		          JOIN customers c ON c.id = i.customer_id
		         ORDER BY i.issued_on DESC`,
		Columns: []table.Column{
			{Key: "number", Label: "Invoice #"},
			{Key: "customer", Label: "Customer"},
			{Key: "issued_on", Label: "Issued"},
			{Key: "due_on", Label: "Due"},
			{Key: "amount", Label: "Amount", Render: renderMoney},
			{Key: "progress", Label: "Collected %"},
		},
		FilterFields: []table.FilterField{
			{Key: "customer", Label: "Customer", Kind: table.KindText},
			{Key: "issued_on", Label: "Issued between", Kind: table.KindDateRange},
			{Key: "amount", Label: "Amount", Kind: table.KindNumberRange, Min: 0, Max: 500000},
			{Key: "progress", Label: "Collected at least", Kind: table.KindSlider, Min: 0, Max: 100, Step: 5},
		},
		SearchPlaceholder: "Search invoices...",
		Exportable:        true,
		PageSize:          25,
	})
}

// renderMoney formats a numeric cell as a dollar amount; non-numeric values
// fall back to the raw string form.
func renderMoney(v any, _ table.Record) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", n)
	case int64:
		return fmt.Sprintf("$%d.00", n)
	default:
		return table.Stringify(v)
	}
}

// renderYesNo formats a boolean cell for display.
func renderYesNo(v any, _ table.Record) string {
	if b, ok := v.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	return table.Stringify(v)
}
