package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marauder/internal/present"
)

// Rows the detail panel spends outside its scrolling body:
// border, banner, meta line, blank, blank, hint, border.
const detailChrome = 7

func (m Model) detailPanelWidth() int {
	return max(min(m.width-4, detailMaxWidth), 20)
}

// detailInnerWidth is the text width inside the panel border and padding.
func (m Model) detailInnerWidth() int {
	return m.detailPanelWidth() - 4
}

// refreshDetail rebuilds the body of the detail overlay for the selection.
func (m *Model) refreshDetail() {
	if m.vs.Selected == nil {
		return
	}
	body := m.renderDetailBody(present.Detail(m.vs.Selected, m.labels))
	lines := strings.Count(body, "\n") + 1

	m.detailViewport.Width = m.detailInnerWidth()
	m.detailViewport.Height = max(min(lines, m.height-detailChrome-2), 3)
	m.detailViewport.SetContent(body)
}

// renderDetailBody lays out the field sections of the detail overlay.
func (m Model) renderDetailBody(d present.DetailView) string {
	styles := m.theme.Styles()
	width := m.detailInnerWidth()
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Palette.Light)).Bold(true)
	if !d.HasHouse {
		accent = styles.AccentText.Bold(true)
	}

	var b strings.Builder
	section := func(title string, fields []present.Field) {
		b.WriteString(accent.Render(title))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 40))))
		b.WriteString("\n")
		labelWidth := present.LabelWidth(fields) + 2
		for _, f := range fields {
			label := styles.MutedText.Width(labelWidth).Render(f.Label)
			value := styles.Text.Width(max(width-labelWidth, 1)).Render(f.Value)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
			b.WriteString("\n")
		}
	}

	section(m.labels.BasicInfo, d.Basic)
	b.WriteString("\n")
	section(m.labels.MagicalTraits, d.Magical)

	if len(d.AlternateNames) > 0 {
		b.WriteString("\n")
		b.WriteString(accent.Render(m.labels.AlternateNames))
		b.WriteString("\n")
		for _, name := range d.AlternateNames {
			b.WriteString(styles.Text.Width(width).Render("• " + name))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.labels.Image+": ") + styles.InfoText.Render(present.Truncate(d.Image, max(width-lipgloss.Width(m.labels.Image)-2, 1))))
	return b.String()
}

// detailPanel renders the bordered panel without placement.
func (m Model) detailPanel() string {
	styles := m.theme.Styles()
	d := present.Detail(m.vs.Selected, m.labels)
	width := m.detailInnerWidth()

	status := m.labels.StatusDeceased
	statusStyle := styles.DangerText
	if d.Alive {
		status = m.labels.StatusAlive
		statusStyle = styles.SuccessText
	}
	house := d.House
	if !d.HasHouse {
		house = m.labels.NoHouse
	}
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Palette.Light)).Render(present.Truncate(house, width/2)) +
		styles.FaintText.Render("  ·  ") + statusStyle.Render(status)

	hint := styles.Key.Render("esc") + styles.FaintText.Render(" "+m.labels.Close)
	if m.detailViewport.TotalLineCount() > m.detailViewport.Height {
		hint += styles.FaintText.Render("   ") + styles.Key.Render("j/k") + styles.FaintText.Render(" ↕")
	}

	content := strings.Join([]string{
		gradientBanner(" "+present.Truncate(d.Name, width-1), d.Palette, width),
		meta,
		"",
		m.detailViewport.View(),
		"",
		hint,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(d.Palette.Primary)).
		Padding(0, 1).
		Width(m.detailPanelWidth() - 2).
		Render(content)
}

// renderDetail centers the detail panel over the page.
func (m Model) renderDetail() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.detailPanel(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// detailBounds returns the panel's screen origin and size.
func (m Model) detailBounds() (x, y, w, h int) {
	w, h = blockSize(m.detailPanel())
	x, y = placedOrigin(m.width, m.height, w, h)
	return x, y, w, h
}
