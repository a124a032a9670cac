package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marauder/internal/state"
)

// pagerSegment is one clickable or decorative piece of the pager row.
type pagerSegment struct {
	text    string
	page    int // target page; 0 for an ellipsis
	enabled bool
	current bool
	x       int // first screen column
}

func (s pagerSegment) width() int {
	return lipgloss.Width(s.text)
}

// pagerSegments lays out Prev, the page labels and Next starting at frameMargin.
// Nothing is returned when the results fit on one page.
func (m Model) pagerSegments(view state.View) []pagerSegment {
	if view.TotalPages <= 1 {
		return nil
	}

	segments := []pagerSegment{{
		text:    "‹ " + m.labels.Prev,
		page:    view.Page - 1,
		enabled: view.HasPrev(),
	}}
	for _, label := range state.PagerLabels(view.Page, view.TotalPages) {
		if label.Ellipsis {
			segments = append(segments, pagerSegment{text: "…"})
			continue
		}
		segments = append(segments, pagerSegment{
			text:    " " + strconv.Itoa(label.Page) + " ",
			page:    label.Page,
			enabled: label.Page != view.Page,
			current: label.Page == view.Page,
		})
	}
	segments = append(segments, pagerSegment{
		text:    m.labels.Next + " ›",
		page:    view.Page + 1,
		enabled: view.HasNext(),
	})

	x := frameMargin
	for i := range segments {
		segments[i].x = x
		x += segments[i].width() + 1
	}
	return segments
}

// renderPager draws the pager row; it is blank when there is a single page.
func (m Model) renderPager(styles Styles, view state.View) string {
	segments := m.pagerSegments(view)
	if len(segments) == 0 {
		return ""
	}
	parts := make([]string, len(segments))
	for i, seg := range segments {
		switch {
		case seg.current:
			parts[i] = styles.Selected.Render(seg.text)
		case seg.page == 0:
			parts[i] = styles.FaintText.Render(seg.text)
		case !seg.enabled:
			parts[i] = styles.FaintText.Faint(true).Render(seg.text)
		default:
			parts[i] = styles.AccentText.Render(seg.text)
		}
	}
	return strings.Join(parts, " ")
}

// pagerTarget returns the page a click at column x lands on, or 0.
func (m Model) pagerTarget(x int) int {
	for _, seg := range m.pagerSegments(m.vs.View()) {
		if x >= seg.x && x < seg.x+seg.width() {
			if seg.enabled && seg.page > 0 {
				return seg.page
			}
			return 0
		}
	}
	return 0
}
