package table

// filter.go models the seven filter kinds as a closed union and evaluates
// them against records. A filter whose value is empty or malformed is inert:
// it matches everything rather than excluding anything. Active filters
// combine with logical AND.

import "fmt"

// FilterKind identifies one of the seven recognized filter semantics.
type FilterKind string

const (
	KindText         FilterKind = "text"
	KindSingleSelect FilterKind = "singleSelect"
	KindMultiSelect  FilterKind = "multiSelect"
	KindDateRange    FilterKind = "dateRange"
	KindNumberRange  FilterKind = "numberRange"
	KindSlider       FilterKind = "slider"
	KindCheckbox     FilterKind = "checkbox"
)

// FilterValue is the current value of one filter field. The seven
// implementations form a closed set; each knows whether it constrains
// anything at all and whether a given field value satisfies it.
type FilterValue interface {
	Kind() FilterKind

	// active reports whether the value constrains records. Inert values
	// (empty term, empty selection, no parseable bound, unchecked box)
	// match everything.
	active() bool

	// match reports whether a field value satisfies an active filter.
	match(field any) bool
}

// Text matches records whose field contains the term, ignoring case.
type Text struct {
	Term string
}

func (f Text) Kind() FilterKind { return KindText }
func (f Text) active() bool     { return f.Term != "" }
func (f Text) match(field any) bool {
	return containsFold(Stringify(field), f.Term)
}

// SingleSelect matches records whose field equals the selected value.
type SingleSelect struct {
	Value string
}

func (f SingleSelect) Kind() FilterKind { return KindSingleSelect }
func (f SingleSelect) active() bool     { return f.Value != "" }
func (f SingleSelect) match(field any) bool {
	return Stringify(field) == f.Value
}

// MultiSelect matches records whose field equals any selected value.
// An empty selection is inert, not "exclude all".
type MultiSelect struct {
	Values []string
}

func (f MultiSelect) Kind() FilterKind { return KindMultiSelect }
func (f MultiSelect) active() bool     { return len(f.Values) > 0 }
func (f MultiSelect) match(field any) bool {
	s := Stringify(field)
	for _, v := range f.Values {
		if s == v {
			return true
		}
	}
	return false
}

// DateRange matches records whose field, parsed as a date, falls inside the
// inclusive [From, To] window. Either bound may be empty or unparseable, in
// which case that side imposes no constraint.
type DateRange struct {
	From string
	To   string
}

func (f DateRange) Kind() FilterKind { return KindDateRange }
func (f DateRange) active() bool {
	_, fromOK := parseDateBound(f.From)
	_, toOK := parseDateBound(f.To)
	return fromOK || toOK
}
func (f DateRange) match(field any) bool {
	t, ok := asTime(field)
	if !ok {
		return false
	}
	if from, ok := parseDateBound(f.From); ok && t.Before(from) {
		return false
	}
	if to, ok := parseDateBound(f.To); ok && t.After(to) {
		return false
	}
	return true
}

// NumberRange matches records whose field, parsed as a number, falls inside
// the inclusive [Min, Max] window. Bounds are carried as strings; an empty
// or non-numeric bound imposes no constraint.
type NumberRange struct {
	Min string
	Max string
}

func (f NumberRange) Kind() FilterKind { return KindNumberRange }
func (f NumberRange) active() bool {
	_, minOK := parseBound(f.Min)
	_, maxOK := parseBound(f.Max)
	return minOK || maxOK
}
func (f NumberRange) match(field any) bool {
	n, ok := asNumber(field)
	if !ok {
		return false
	}
	if min, ok := parseBound(f.Min); ok && n < min {
		return false
	}
	if max, ok := parseBound(f.Max); ok && n > max {
		return false
	}
	return true
}

// Slider matches records whose numeric field is at least the slider value.
type Slider struct {
	Value string
}

func (f Slider) Kind() FilterKind { return KindSlider }
func (f Slider) active() bool {
	_, ok := parseBound(f.Value)
	return ok
}
func (f Slider) match(field any) bool {
	floor, ok := parseBound(f.Value)
	if !ok {
		return true
	}
	n, ok := asNumber(field)
	return ok && n >= floor
}

// Checkbox, when checked, matches records whose field is truthy. Unchecked
// is inert.
type Checkbox struct {
	Checked bool
}

func (f Checkbox) Kind() FilterKind { return KindCheckbox }
func (f Checkbox) active() bool     { return f.Checked }
func (f Checkbox) match(field any) bool {
	return isTruthy(field)
}

// FilterSet maps filter field keys to their current values.
type FilterSet map[string]FilterValue

// matches reports whether a record satisfies every active filter in the set.
func (fs FilterSet) matches(rec Record) bool {
	for key, fv := range fs {
		if fv == nil || !fv.active() {
			continue
		}
		if !fv.match(rec[key]) {
			return false
		}
	}
	return true
}

// ZeroValue returns the inert filter value for a kind. Returns an error for
// unrecognized kinds so descriptor typos surface at registration time.
func ZeroValue(kind FilterKind) (FilterValue, error) {
	switch kind {
	case KindText:
		return Text{}, nil
	case KindSingleSelect:
		return SingleSelect{}, nil
	case KindMultiSelect:
		return MultiSelect{}, nil
	case KindDateRange:
		return DateRange{}, nil
	case KindNumberRange:
		return NumberRange{}, nil
	case KindSlider:
		return Slider{}, nil
	case KindCheckbox:
		return Checkbox{}, nil
	default:
		return nil, fmt.Errorf("unknown filter kind: %q", kind)
	}
}
