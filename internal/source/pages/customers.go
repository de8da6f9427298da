package pages

import (
	"github.com/gridworks/tabular/internal/source"
	"github.com/gridworks/tabular/internal/table"
)

func init() {
	registerCustomers()
}

func registerCustomers() {
	source.Register(source.Page{
		Key:       "customers",
		Title:     "Customers",
		TableName: "customers",
		Query: `SELECT id, name, segment, region, lifetime_value, active
		          FROM customers
		         ORDER BY id`,
		Columns: []table.Column{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Customer"},
			{Key: "segment", Label: "Segment"},
			{Key: "region", Label: "Region"},
			{Key: "lifetime_value", Label: "Lifetime Value", Render: renderMoney},
			{Key: "active", Label: "Active", Render: renderYesNo},
		},
		FilterFields: []table.FilterField{
			{Key: "name", Label: "Customer", Kind: table.KindText},
			{Key: "segment", Label: "Segment", Kind: table.KindSingleSelect, Options: []table.Option{
				{Value: "smb", Label: "SMB"},
				{Value: "mid-market", Label: "Mid-Market"},
				{Value: "enterprise", Label: "Enterprise"},
			}},
			{Key: "region", Label: "Region", Kind: table.KindMultiSelect, Options: []table.Option{
				{Value: "amer", Label: "Americas"},
				{Value: "emea", Label: "EMEA"},
				{Value: "apac", Label: "APAC"},
			}},
			{Key: "lifetime_value", Label: "Lifetime Value", Kind: table.KindNumberRange, Min: 0, Max: 1000000},
			{Key: "active", Label: "Active only", Kind: table.KindCheckbox},
		},
		SearchPlaceholder: "Search customers...",
		Exportable:        true,
	})
}
