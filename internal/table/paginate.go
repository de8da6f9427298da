package table

// paginate.go derives the page window over the filtered collection and the
// page-index list used by navigation controls.

// Ellipsis is the sentinel entry in a page list marking a run of skipped
// pages between the fixed endpoints and the window around the current page.
const Ellipsis = -1

// pageWindow is how many pages either side of the current page stay visible
// in the navigation list.
const pageWindow = 2

// totalPages returns the page count for a filtered collection: zero when the
// collection is empty, otherwise ceil(count/pageSize).
func totalPages(count, pageSize int) int {
	if count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// clampPage forces a page number into [1, max(1, total)]. An empty
// collection still reports page 1; it just yields an empty slice.
func clampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// pageSlice returns the rows for one page of the sorted, filtered
// collection.
func pageSlice(recs []Record, page, pageSize int) []Record {
	start := (page - 1) * pageSize
	if start >= len(recs) {
		return []Record{}
	}
	end := start + pageSize
	if end > len(recs) {
		end = len(recs)
	}
	return recs[start:end]
}

// pageList builds the windowed page-index list: always page 1 and the last
// page, every page within pageWindow of current, and a single Ellipsis
// bridging each gap.
func pageList(total, current int) []int {
	if total <= 1 {
		return []int{1}
	}

	list := make([]int, 0, 2*pageWindow+5)
	prev := 0
	for p := 1; p <= total; p++ {
		show := p == 1 || p == total ||
			(p >= current-pageWindow && p <= current+pageWindow)
		if !show {
			continue
		}
		if prev != 0 && p-prev > 1 {
			list = append(list, Ellipsis)
		}
		list = append(list, p)
		prev = p
	}
	return list
}
