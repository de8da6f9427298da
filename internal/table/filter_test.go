package table

import "testing"

func testRecords() []Record {
	return []Record{
		{"id": int64(1), "name": "Acme", "amount": float64(100)},
		{"id": int64(2), "name": "Beta", "amount": float64(50)},
	}
}

func TestText_CaseInsensitiveSubstring(t *testing.T) {
	f := Text{Term: "ACM"}
	if !f.match("Acme Corp") {
		t.Error("expected case-insensitive substring to match")
	}
	if f.match("Beta") {
		t.Error("expected non-matching value to be excluded")
	}
}

func TestText_EmptyTermIsInert(t *testing.T) {
	if (Text{}).active() {
		t.Error("empty text filter should be inert")
	}
}

func TestSingleSelect_ExactEquality(t *testing.T) {
	f := SingleSelect{Value: "active"}
	if !f.match("active") {
		t.Error("expected exact match")
	}
	if f.match("inactive") {
		t.Error("substring must not match for singleSelect")
	}
	if f.match("Active") {
		t.Error("singleSelect equality is case-sensitive")
	}
}

func TestSingleSelect_NumericField(t *testing.T) {
	f := SingleSelect{Value: "100"}
	if !f.match(float64(100)) {
		t.Error("numeric field should equal its stringified form")
	}
}

func TestMultiSelect_Membership(t *testing.T) {
	f := MultiSelect{Values: []string{"a", "b"}}
	if !f.match("a") || !f.match("b") {
		t.Error("selected values should match")
	}
	if f.match("c") {
		t.Error("unselected value should not match")
	}
}

func TestMultiSelect_EmptyListIsInert(t *testing.T) {
	if (MultiSelect{}).active() {
		t.Error("empty selection must be inert, not exclude-all")
	}
}

func TestDateRange_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		f     DateRange
		field any
		want  bool
	}{
		{"inside both bounds", DateRange{From: "2024-01-01", To: "2024-12-31"}, "2024-06-15", true},
		{"on lower bound", DateRange{From: "2024-06-15"}, "2024-06-15", true},
		{"on upper bound", DateRange{To: "2024-06-15"}, "2024-06-15", true},
		{"before lower bound", DateRange{From: "2024-06-15"}, "2024-06-14", false},
		{"after upper bound", DateRange{To: "2024-06-15"}, "2024-06-16", false},
		{"only from set", DateRange{From: "2024-01-01"}, "2030-01-01", true},
		{"unparseable field", DateRange{From: "2024-01-01"}, "not a date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.match(tt.field); got != tt.want {
				t.Errorf("match(%v) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestDateRange_MalformedBoundIsAbsent(t *testing.T) {
	f := DateRange{From: "garbage", To: "2024-12-31"}
	if !f.match("2024-06-15") {
		t.Error("malformed from bound must impose no constraint")
	}
	if (DateRange{From: "garbage"}).active() {
		t.Error("range with no parseable bound should be inert")
	}
}

func TestNumberRange_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		f     NumberRange
		field any
		want  bool
	}{
		{"inside", NumberRange{Min: "10", Max: "20"}, float64(15), true},
		{"on min", NumberRange{Min: "10"}, float64(10), true},
		{"on max", NumberRange{Max: "10"}, float64(10), true},
		{"below min", NumberRange{Min: "10"}, float64(9.5), false},
		{"above max", NumberRange{Max: "10"}, float64(10.5), false},
		{"numeric string field", NumberRange{Min: "10"}, "15", true},
		{"non-numeric field", NumberRange{Min: "10"}, "abc", false},
		{"non-numeric min is absent", NumberRange{Min: "abc", Max: "20"}, float64(5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.match(tt.field); got != tt.want {
				t.Errorf("match(%v) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestSlider_FloorConstraint(t *testing.T) {
	f := Slider{Value: "60"}
	if !f.match(float64(100)) {
		t.Error("value above floor should match")
	}
	if f.match(float64(50)) {
		t.Error("value below floor should not match")
	}
	if !(Slider{Value: "0"}).active() {
		t.Error("slider at zero is still an active constraint")
	}
	if (Slider{}).active() {
		t.Error("unset slider should be inert")
	}
}

func TestCheckbox_TruthySemantics(t *testing.T) {
	f := Checkbox{Checked: true}
	if !f.match(true) || !f.match("yes") || !f.match(float64(1)) {
		t.Error("truthy values should match a checked filter")
	}
	if f.match(false) || f.match("") || f.match(float64(0)) || f.match(nil) {
		t.Error("falsy values should not match a checked filter")
	}
	if (Checkbox{Checked: false}).active() {
		t.Error("unchecked checkbox must be inert, not invert")
	}
}

func TestFilterSet_ActiveFiltersANDTogether(t *testing.T) {
	fs := FilterSet{
		"name":   Text{Term: "a"},
		"amount": NumberRange{Min: "60"},
	}
	recs := testRecords()

	// "Acme" contains "a" and 100 >= 60
	if !fs.matches(recs[0]) {
		t.Error("record satisfying all filters should pass")
	}
	// "Beta" contains "a" but 50 < 60
	if fs.matches(recs[1]) {
		t.Error("record failing one filter should be dropped")
	}
}

func TestFilterSet_InertFiltersNeverExclude(t *testing.T) {
	fs := FilterSet{
		"name":   Text{},
		"tags":   MultiSelect{},
		"flag":   Checkbox{},
		"amount": NumberRange{},
		"absent": nil,
	}
	for _, rec := range testRecords() {
		if !fs.matches(rec) {
			t.Errorf("inert filter set excluded record %v", rec)
		}
	}
}

// Scenario: amount numberRange {min:60} keeps only the 100-amount record.
func TestFilterSet_NumberRangeMinScenario(t *testing.T) {
	fs := FilterSet{"amount": NumberRange{Min: "60"}}
	var kept []Record
	for _, rec := range testRecords() {
		if fs.matches(rec) {
			kept = append(kept, rec)
		}
	}
	if len(kept) != 1 {
		t.Fatalf("kept %d records, want 1", len(kept))
	}
	if kept[0]["id"] != int64(1) {
		t.Errorf("kept id = %v, want 1", kept[0]["id"])
	}
}

func TestZeroValue_AllKinds(t *testing.T) {
	kinds := []FilterKind{
		KindText, KindSingleSelect, KindMultiSelect,
		KindDateRange, KindNumberRange, KindSlider, KindCheckbox,
	}
	for _, k := range kinds {
		fv, err := ZeroValue(k)
		if err != nil {
			t.Fatalf("ZeroValue(%s) error = %v", k, err)
		}
		if fv.Kind() != k {
			t.Errorf("ZeroValue(%s).Kind() = %s", k, fv.Kind())
		}
		if fv.active() {
			t.Errorf("zero value for %s should be inert", k)
		}
	}

	if _, err := ZeroValue("fuzzy"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
