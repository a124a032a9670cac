package state

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/marauder/internal/catalog"
)

// PageSize is the number of records on one page.
const PageSize = 8

// View is the render-ready slice of state for one page.
type View struct {
	Items         []*catalog.Character // window for Page; points into the records slice
	Page          int
	TotalFiltered int
	TotalPages    int
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool {
	return v.Page > 1
}

// HasNext reports whether a following page exists.
func (v View) HasNext() bool {
	return v.Page < v.TotalPages
}

// Build filters records and cuts out the window for page.
func Build(records []catalog.Character, search, house string, page int) View {
	filtered := Filter(records, search, house)
	total := len(filtered)

	if page < 1 {
		page = 1
	}
	v := View{
		Page:          page,
		TotalFiltered: total,
		TotalPages:    totalPages(total),
	}

	start := (page - 1) * PageSize
	end := page * PageSize
	if start >= total {
		return v
	}
	if end > total {
		end = total
	}
	v.Items = filtered[start:end]
	return v
}

// Filter returns pointers to the records that match search and house, in
// their original order.
func Filter(records []catalog.Character, search, house string) []*catalog.Character {
	folder := cases.Fold()
	needle := folder.String(search)
	matchAll := house == "" || house == HouseAll

	out := make([]*catalog.Character, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !matchAll && string(rec.House) != house {
			continue
		}
		if needle != "" && !strings.Contains(folder.String(rec.Name), needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func totalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
