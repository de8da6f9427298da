package table

import (
	"testing"
	"time"
)

func amounts(recs []Record) []any {
	out := make([]any, len(recs))
	for i, r := range recs {
		out[i] = r["amount"]
	}
	return out
}

// Scenario: amount asc yields [50, 100]; toggling to desc yields [100, 50].
func TestSort_NumericAscDesc(t *testing.T) {
	recs := testRecords()

	asc := sortRecords(recs, Sort{Key: "amount", Dir: Asc})
	if asc[0]["amount"] != float64(50) || asc[1]["amount"] != float64(100) {
		t.Errorf("asc order = %v, want [50 100]", amounts(asc))
	}

	desc := sortRecords(recs, Sort{Key: "amount", Dir: Desc})
	if desc[0]["amount"] != float64(100) || desc[1]["amount"] != float64(50) {
		t.Errorf("desc order = %v, want [100 50]", amounts(desc))
	}
}

func TestSort_InputNeverMutated(t *testing.T) {
	recs := testRecords()
	sortRecords(recs, Sort{Key: "amount", Dir: Asc})
	if recs[0]["amount"] != float64(100) {
		t.Error("sortRecords must not reorder its input")
	}
}

func TestSort_NoDirectivePreservesOrder(t *testing.T) {
	recs := testRecords()
	out := sortRecords(recs, Sort{})
	for i := range recs {
		if out[i]["id"] != recs[i]["id"] {
			t.Fatal("inactive sort must preserve input order")
		}
	}
}

// Scenario: a nil amount sorts after numeric amounts in either direction.
func TestSort_NullsAlwaysLast(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "amount": nil},
		{"id": int64(2), "amount": float64(50)},
		{"id": int64(3), "amount": float64(100)},
	}

	for _, dir := range []Direction{Asc, Desc} {
		out := sortRecords(recs, Sort{Key: "amount", Dir: dir})
		if out[len(out)-1]["amount"] != nil {
			t.Errorf("dir %s: nil amount should sort last, got %v", dir, amounts(out))
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "group": "b"},
		{"id": int64(2), "group": "a"},
		{"id": int64(3), "group": "a"},
		{"id": int64(4), "group": "b"},
	}

	asc := sortRecords(recs, Sort{Key: "group", Dir: Asc})
	wantAsc := []int64{2, 3, 1, 4}
	for i, want := range wantAsc {
		if asc[i]["id"] != want {
			t.Fatalf("asc ids = %v, want %v at %d", asc, want, i)
		}
	}

	// Ties keep pre-sort relative order on the descending pass too.
	desc := sortRecords(recs, Sort{Key: "group", Dir: Desc})
	wantDesc := []int64{1, 4, 2, 3}
	for i, want := range wantDesc {
		if desc[i]["id"] != want {
			t.Fatalf("desc ids = %v, want %v at %d", desc, want, i)
		}
	}
}

func TestSort_DateStringsCompareByTimestamp(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "due": "2024-12-01"},
		{"id": int64(2), "due": "2024-02-15"},
		{"id": int64(3), "due": "2024-07-04"},
	}
	out := sortRecords(recs, Sort{Key: "due", Dir: Asc})
	want := []int64{2, 3, 1}
	for i, w := range want {
		if out[i]["id"] != w {
			t.Fatalf("date sort order wrong: got %v at %d, want %v", out[i]["id"], i, w)
		}
	}
}

func TestSort_TimeValues(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recs := []Record{
		{"id": int64(1), "at": late},
		{"id": int64(2), "at": early},
	}
	out := sortRecords(recs, Sort{Key: "at", Dir: Asc})
	if out[0]["id"] != int64(2) {
		t.Error("time.Time values should compare by timestamp")
	}
}

func TestSort_StringsCaseInsensitive(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "name": "banana"},
		{"id": int64(2), "name": "Apple"},
		{"id": int64(3), "name": "cherry"},
	}
	out := sortRecords(recs, Sort{Key: "name", Dir: Asc})
	want := []int64{2, 1, 3}
	for i, w := range want {
		if out[i]["id"] != w {
			t.Fatalf("string sort order wrong at %d: got %v, want %v", i, out[i]["id"], w)
		}
	}
}

func TestSort_UnparseableFallsBackToString(t *testing.T) {
	// Mixed column: one date-ish, one not. Pairwise classification falls
	// back to string comparison when either side fails to parse.
	recs := []Record{
		{"id": int64(1), "v": "zebra"},
		{"id": int64(2), "v": "2024-01-01"},
	}
	out := sortRecords(recs, Sort{Key: "v", Dir: Asc})
	if out[0]["id"] != int64(2) {
		t.Error("expected \"2024-01-01\" < \"zebra\" under string fallback")
	}
}

func TestSort_NumericStringsCompareNumerically(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "v": "100"},
		{"id": int64(2), "v": "20"},
	}
	out := sortRecords(recs, Sort{Key: "v", Dir: Asc})
	if out[0]["v"] != "20" {
		t.Error("numeric strings should compare as numbers, not lexically")
	}
}

func TestSortToggle(t *testing.T) {
	var s Sort

	s = s.toggled("amount")
	if s.Key != "amount" || s.Dir != Asc {
		t.Fatalf("first click = %+v, want amount asc", s)
	}

	s = s.toggled("amount")
	if s.Key != "amount" || s.Dir != Desc {
		t.Fatalf("second click = %+v, want amount desc", s)
	}

	// Third click on the same column while descending returns to ascending.
	s = s.toggled("amount")
	if s.Dir != Asc {
		t.Fatalf("third click = %+v, want amount asc", s)
	}

	// Clicking another column sorts it ascending.
	s = s.toggled("name")
	if s.Key != "name" || s.Dir != Asc {
		t.Fatalf("other column click = %+v, want name asc", s)
	}
}
