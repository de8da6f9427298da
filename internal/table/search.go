package table

// matchesSearch reports whether a record satisfies the current search state.
// An empty term matches everything. Scope "all" (or empty) checks every
// column's stringified value; any other scope checks only that column.
// Missing fields stringify to "" and never match a non-empty term.
func matchesSearch(rec Record, search SearchState, columns []Column) bool {
	if search.Term == "" {
		return true
	}

	if search.Scope == "" || search.Scope == ScopeAll {
		for _, col := range columns {
			if containsFold(Stringify(rec[col.fieldKey()]), search.Term) {
				return true
			}
		}
		return false
	}

	for _, col := range columns {
		if col.Key == search.Scope {
			return containsFold(Stringify(rec[col.fieldKey()]), search.Term)
		}
	}
	return false
}
