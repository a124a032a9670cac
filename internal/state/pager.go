package state

// PagerLabel is one entry of the pager: a page number or a gap marker.
type PagerLabel struct {
	Page     int
	Ellipsis bool
}

// PagerLabels lists the pager entries for page out of totalPages. The first and
// last pages are always present, as are the pages adjacent to page; every run
// of hidden pages collapses into a single ellipsis.
func PagerLabels(page, totalPages int) []PagerLabel {
	if totalPages <= 0 {
		return nil
	}

	shown := make([]int, 0, 5)
	add := func(p int) {
		if p < 1 || p > totalPages {
			return
		}
		for _, existing := range shown {
			if existing == p {
				return
			}
		}
		shown = append(shown, p)
	}
	// Once out-of-range pages are dropped the candidates are ascending.
	add(1)
	add(page - 1)
	add(page)
	add(page + 1)
	add(totalPages)

	labels := make([]PagerLabel, 0, len(shown)+2)
	prev := 0
	for _, p := range shown {
		if prev > 0 && p > prev+1 {
			labels = append(labels, PagerLabel{Ellipsis: true})
		}
		labels = append(labels, PagerLabel{Page: p})
		prev = p
	}
	return labels
}
