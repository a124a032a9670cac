package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/marauder/internal/catalog"
	"github.com/five82/marauder/internal/present"
	"github.com/five82/marauder/internal/state"
)

// renderGrid draws the visible rows of cards, or the empty-state message.
func (m Model) renderGrid(styles Styles, view state.View) string {
	g := m.grid()
	margin := strings.Repeat(" ", frameMargin)

	if len(view.Items) == 0 {
		lines := []string{margin + styles.MutedText.Render(m.labels.NoResults)}
		if m.vs.LoadErr != nil {
			lines = append(lines, margin+styles.DangerText.Render(m.labels.LoadFailed))
		}
		return lipgloss.NewStyle().Height(cardHeight).Render(strings.Join(lines, "\n"))
	}

	var rows []string
	for r := m.rowOffset; r < m.rowOffset+g.rows; r++ {
		start := r * g.columns
		if start >= len(view.Items) {
			break
		}
		end := min(start+g.columns, len(view.Items))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.renderCard(view.Items[i], g.cardWidth, i == m.cursor))
		}
		rows = append(rows, margin+lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one character card exactly width cells wide and cardHeight tall.
func (m Model) renderCard(ch *catalog.Character, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-2, 1)
	card := present.Card(ch, inner-1, m.labels)

	house := lipgloss.NewStyle().Foreground(lipgloss.Color(card.Palette.Light))
	if !card.HasHouse {
		house = styles.FaintText
	}

	badgeBg := m.theme.Danger
	if card.Alive {
		badgeBg = m.theme.Success
	}
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(badgeBg)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1).
		Render(card.Badge)

	lines := []string{
		gradientBanner(" "+card.Name, card.Palette, inner),
		" " + house.Render(card.House),
		" " + badge,
		" " + styles.MutedText.Render(m.labels.Species) + " " + styles.Text.Render(card.Species),
		" " + styles.MutedText.Render(m.labels.Actor) + " " + styles.Text.Render(card.Actor),
	}

	border := lipgloss.RoundedBorder()
	borderColor := card.Palette.Primary
	if selected {
		border = lipgloss.ThickBorder()
		borderColor = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(inner).
		MaxWidth(width).
		Height(cardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// gradientBanner paints text over a width-cell strip blending the palette's
// primary color into its secondary, choosing a readable foreground per cell.
func gradientBanner(text string, p present.Palette, width int) string {
	colors := present.Gradient(p, width)
	var b strings.Builder
	cell := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cell+w > width {
			break
		}
		bg := colors[cell]
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(present.ReadableOn(bg))).
			Bold(true).
			Render(string(r)))
		cell += w
	}
	for ; cell < width; cell++ {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(colors[cell])).Render(" "))
	}
	return b.String()
}
