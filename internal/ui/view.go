package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marauder/internal/catalog"
	"github.com/five82/marauder/internal/present"
	"github.com/five82/marauder/internal/state"
)

// searchFieldWidth is the visible width of the search box text.
const searchFieldWidth = 28

// renderLoading shows the spinner until the catalog load settles.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	content := m.spinner.View() + " " + styles.MutedText.Render(m.labels.Loading)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
	)
}

// renderMain renders the browser page. Row positions must agree with gridTop
// and pagerRow, which the mouse handler uses for hit-testing.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	view := m.vs.View()
	margin := strings.Repeat(" ", frameMargin)

	lines := []string{
		margin + styles.Title.Render(present.Truncate(m.labels.Title, m.width-2*frameMargin)),
		margin + styles.MutedText.Render(present.Truncate(m.labels.Subtitle, m.width-2*frameMargin)),
		"",
		margin + m.renderControls(styles),
		margin + m.renderReadout(styles, view),
		"",
		m.renderGrid(styles, view),
		"",
		margin + m.renderPager(styles, view),
		margin + m.renderFooter(styles),
	}
	return strings.Join(lines, "\n")
}

// renderControls draws the search box, house selector and sort selector on one row.
func (m Model) renderControls(styles Styles) string {
	var search string
	if m.searching {
		search = lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.FocusBg)).
			Width(searchFieldWidth + 4).
			Render(m.search.View())
	} else {
		text := m.search.Value()
		style := styles.Text
		if text == "" {
			text = m.labels.SearchPlaceholder
			style = styles.FaintText
		}
		bg := NewBgStyle(m.theme.SurfaceAlt)
		search = bg.FillLine(
			bg.Render("/ ", styles.AccentText)+bg.Render(present.Truncate(text, searchFieldWidth), style),
			searchFieldWidth+4,
		)
	}

	house := m.vs.HouseFilter
	houseStyle := styles.Text
	if house == state.HouseAll {
		house = m.labels.AllHouses
		houseStyle = styles.MutedText
	} else {
		palette := present.PaletteFor(catalog.House(house))
		houseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Light)).Bold(true)
	}
	selector := styles.FaintText.Render("‹ ") + houseStyle.Render(house) + styles.FaintText.Render(" ›")

	sort := styles.MutedText.Render(m.labels.SortBy+" ") + styles.Text.Render(m.labels.SortOptions[m.sortIdx])

	return lipgloss.JoinHorizontal(lipgloss.Top, search, "  ", selector, "  ", sort)
}

func (m Model) renderReadout(styles Styles, view state.View) string {
	return styles.MutedText.Render(fmt.Sprintf(m.labels.Showing, len(view.Items), view.TotalFiltered))
}

func (m Model) renderFooter(styles Styles) string {
	hint := styles.Key.Render("?") + styles.FaintText.Render(" "+m.labels.HelpHint)
	footer := styles.Footer.Render(present.Truncate(m.labels.Footer, m.width-2*frameMargin-lipgloss.Width(hint)-2))
	gap := m.width - 2*frameMargin - lipgloss.Width(footer) - lipgloss.Width(hint)
	if gap < 1 {
		return footer
	}
	return footer + strings.Repeat(" ", gap) + hint
}

// pagerRow is the screen row the pager is drawn on.
func (m Model) pagerRow() int {
	g := m.grid()
	return gridTop + g.gridHeight(len(m.vs.View().Items), m.rowOffset) + 1
}
