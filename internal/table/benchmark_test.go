package table

import (
	"fmt"
	"io"
	"testing"
)

// benchRecords builds a collection at the intended scale: tens of thousands
// of rows with mixed-type fields.
func benchRecords(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{
			"id":     int64(i + 1),
			"name":   fmt.Sprintf("Account %d", i),
			"amount": float64(i%997) * 1.5,
			"due":    fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			"active": i%3 == 0,
		}
	}
	return recs
}

func benchView(b *testing.B, n int) *View {
	b.Helper()
	v, err := NewView(Params{
		Columns: []Column{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Name"},
			{Key: "amount", Label: "Amount"},
			{Key: "due", Label: "Due"},
		},
		FilterFields: []FilterField{
			{Key: "name", Kind: KindText},
			{Key: "amount", Kind: KindNumberRange},
		},
		PageSize:  25,
		TableName: "bench",
	})
	if err != nil {
		b.Fatal(err)
	}
	v.SetData(benchRecords(n))
	return v
}

// BenchmarkDerive_Filtered measures the full recomputation that runs on
// every interaction: search, filter, sort, paginate.
func BenchmarkDerive_Filtered(b *testing.B) {
	v := benchView(b, 20000)
	v.SetSearch("account 1", "name")
	_ = v.SetFilter("amount", NumberRange{Min: "100"})
	v.SetSort(Sort{Key: "amount", Dir: Desc})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Derive()
	}
}

// BenchmarkDerive_SortOnly measures the dominant O(n log n) component.
func BenchmarkDerive_SortOnly(b *testing.B) {
	v := benchView(b, 20000)
	v.SetSort(Sort{Key: "due", Dir: Asc})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Derive()
	}
}

// BenchmarkExportCSV measures serializing a full filtered view.
func BenchmarkExportCSV(b *testing.B) {
	v := benchView(b, 20000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Export(io.Discard, FormatCSV); err != nil {
			b.Fatal(err)
		}
	}
}
