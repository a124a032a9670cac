package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pages(ps ...int) []PagerLabel {
	out := make([]PagerLabel, 0, len(ps))
	for _, p := range ps {
		if p == 0 {
			out = append(out, PagerLabel{Ellipsis: true})
			continue
		}
		out = append(out, PagerLabel{Page: p})
	}
	return out
}

func TestPagerLabels(t *testing.T) {
	const gap = 0
	cases := []struct {
		name  string
		page  int
		total int
		want  []PagerLabel
	}{
		{"middle of ten", 5, 10, pages(1, gap, 4, 5, 6, gap, 10)},
		{"three pages from start", 1, 3, pages(1, 2, 3)},
		{"single page", 1, 1, pages(1)},
		{"two pages", 2, 2, pages(1, 2)},
		{"first of ten", 1, 10, pages(1, 2, gap, 10)},
		{"last of ten", 10, 10, pages(1, gap, 9, 10)},
		{"third of ten", 3, 10, pages(1, 2, 3, 4, gap, 10)},
		{"fourth of ten", 4, 10, pages(1, gap, 3, 4, 5, gap, 10)},
		{"eighth of ten", 8, 10, pages(1, gap, 7, 8, 9, 10)},
		{"past the end", 12, 10, pages(1, gap, 10)},
		{"no pages", 1, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PagerLabels(tc.page, tc.total)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("PagerLabels(%d, %d) mismatch (-want +got):\n%s", tc.page, tc.total, diff)
			}
		})
	}
}

func TestPagerLabels_NoDuplicatesOrAdjacentGaps(t *testing.T) {
	for total := 1; total <= 15; total++ {
		for page := 1; page <= total; page++ {
			labels := PagerLabels(page, total)
			seen := map[int]bool{}
			for i, l := range labels {
				if l.Ellipsis {
					if i > 0 && labels[i-1].Ellipsis {
						t.Fatalf("page %d/%d: adjacent ellipses in %v", page, total, labels)
					}
					continue
				}
				if seen[l.Page] {
					t.Fatalf("page %d/%d: duplicate page %d in %v", page, total, l.Page, labels)
				}
				seen[l.Page] = true
			}
			if !seen[1] || !seen[total] || !seen[page] {
				t.Fatalf("page %d/%d: labels %v miss first, last or current", page, total, labels)
			}
		}
	}
}
