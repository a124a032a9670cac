package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModal lists the key bindings. Any key or click closes it.
type helpModal struct {
	sections []helpSection
}

type helpSection struct {
	title string
	items []key.Binding
}

func newHelpModal(k keyMap) helpModal {
	groups := k.FullHelp()
	titles := []string{"Filters", "Cards", "Pages", "Overlays", "General"}
	sections := make([]helpSection, 0, len(groups))
	for i, group := range groups {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		sections = append(sections, helpSection{title: title, items: group})
	}
	return helpModal{sections: sections}
}

// Update implements Modal.
func (h helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h, nil, true
	case tea.MouseMsg:
		return h, nil, msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	}
	return h, nil, false
}

// View implements Modal.
func (h helpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", helpWidth-6)))
	b.WriteString("\n\n")

	keyStyle := styles.Key.Width(12)
	for i, section := range h.sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.items {
			help := binding.Help()
			b.WriteString(keyStyle.Render(help.Key))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}
		if i < len(h.sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(helpWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
