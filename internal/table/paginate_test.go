package table

import (
	"reflect"
	"testing"
)

func seqRecords(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{"id": int64(i + 1)}
	}
	return recs
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, pageSize, want int
	}{
		{0, 15, 0},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{25, 15, 2},
		{30, 15, 2},
		{31, 15, 3},
	}
	for _, tt := range tests {
		if got := totalPages(tt.count, tt.pageSize); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tt.count, tt.pageSize, got, tt.want)
		}
	}
}

// Scenario: 25 records at page size 15 -> two pages of 15 and 10 rows,
// page list [1 2] with no ellipsis.
func TestPagination_TwoPageScenario(t *testing.T) {
	recs := seqRecords(25)

	if got := totalPages(len(recs), 15); got != 2 {
		t.Fatalf("totalPages = %d, want 2", got)
	}
	if got := len(pageSlice(recs, 1, 15)); got != 15 {
		t.Errorf("page 1 has %d rows, want 15", got)
	}
	if got := len(pageSlice(recs, 2, 15)); got != 10 {
		t.Errorf("page 2 has %d rows, want 10", got)
	}
	if got := pageList(2, 1); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("pageList = %v, want [1 2]", got)
	}
}

func TestPageSlice_UnionReconstructsCollection(t *testing.T) {
	recs := seqRecords(47)
	pageSize := 10
	total := totalPages(len(recs), pageSize)

	var rebuilt []Record
	for p := 1; p <= total; p++ {
		slice := pageSlice(recs, p, pageSize)
		if p < total && len(slice) != pageSize {
			t.Errorf("page %d has %d rows, want full page of %d", p, len(slice), pageSize)
		}
		rebuilt = append(rebuilt, slice...)
	}

	if len(rebuilt) != len(recs) {
		t.Fatalf("rebuilt %d rows, want %d", len(rebuilt), len(recs))
	}
	for i := range recs {
		if rebuilt[i]["id"] != recs[i]["id"] {
			t.Fatalf("row %d duplicated or out of order", i)
		}
	}
}

func TestPageSlice_BeyondEndIsEmpty(t *testing.T) {
	if got := pageSlice(seqRecords(5), 3, 10); len(got) != 0 {
		t.Errorf("slice past the end has %d rows, want 0", len(got))
	}
	if got := pageSlice(nil, 1, 10); len(got) != 0 {
		t.Errorf("slice of empty collection has %d rows, want 0", len(got))
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 5, 1},
		{5, 5, 5},
		{9, 5, 5},
		{0, 5, 1},
		{-3, 5, 1},
		{1, 0, 1}, // empty collection still reports page 1
		{7, 0, 1},
	}
	for _, tt := range tests {
		if got := clampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("clampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestPageList_Windowing(t *testing.T) {
	tests := []struct {
		name           string
		total, current int
		want           []int
	}{
		{"single page", 1, 1, []int{1}},
		{"no pages", 0, 1, []int{1}},
		{"small set no ellipsis", 5, 3, []int{1, 2, 3, 4, 5}},
		{"middle of large set", 20, 10, []int{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 20}},
		{"near start", 20, 2, []int{1, 2, 3, 4, Ellipsis, 20}},
		{"near end", 20, 19, []int{1, Ellipsis, 17, 18, 19, 20}},
		{"window touches endpoints", 7, 4, []int{1, 2, 3, 4, 5, 6, 7}},
		{"single gap gets one ellipsis", 10, 1, []int{1, 2, 3, Ellipsis, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageList(tt.total, tt.current); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pageList(%d, %d) = %v, want %v", tt.total, tt.current, got, tt.want)
			}
		})
	}
}
