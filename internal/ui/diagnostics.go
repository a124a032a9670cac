package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marauder/internal/logtail"
	"github.com/five82/marauder/internal/present"
)

// diagnosticsModal shows the tail of the log file.
type diagnosticsModal struct {
	path     string
	entries  []logtail.Entry
	err      error
	loaded   bool
	width    int
	height   int
	viewport viewport.Model
	theme    Theme
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

func readDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.Tail(path, diagTailLines)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

func newDiagnosticsModal(path string, theme Theme, width, height int) *diagnosticsModal {
	d := &diagnosticsModal{path: path, theme: theme, viewport: viewport.New(0, 0)}
	d.resize(width, height)
	d.render()
	return d
}

func (d *diagnosticsModal) panelWidth() int {
	return max(min(d.width-4, diagMaxWidth), 20)
}

func (d *diagnosticsModal) resize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = d.panelWidth() - 4
	// border, title, path, blank, blank, status, border
	d.viewport.Height = max(d.height-2-7, 3)
}

// Update implements Modal.
func (d *diagnosticsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		d.render()
		return d, nil, false

	case diagnosticsMsg:
		d.entries = msg.entries
		d.err = msg.err
		d.loaded = true
		d.render()
		d.viewport.GotoBottom()
		return d, nil, false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Close), key.Matches(msg, keys.Diagnostics):
			return d, nil, true
		case key.Matches(msg, keys.Reload):
			return d, readDiagnosticsCmd(d.path), false
		case key.Matches(msg, keys.ScrollUp):
			d.viewport.ScrollUp(1)
		case key.Matches(msg, keys.ScrollDown):
			d.viewport.ScrollDown(1)
		case key.Matches(msg, keys.HalfPageUp):
			d.viewport.HalfPageUp()
		case key.Matches(msg, keys.HalfPageDown):
			d.viewport.HalfPageDown()
		case key.Matches(msg, keys.FirstPage):
			d.viewport.GotoTop()
		case key.Matches(msg, keys.LastPage):
			d.viewport.GotoBottom()
		}
		return d, nil, false

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			d.viewport.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			d.viewport.ScrollDown(3)
		}
		return d, nil, false
	}
	return d, nil, false
}

// render rebuilds the viewport content with the current theme.
func (d *diagnosticsModal) render() {
	styles := d.theme.Styles()
	width := d.viewport.Width

	var lines []string
	switch {
	case d.err != nil:
		lines = append(lines, styles.DangerText.Render("read log: ")+styles.Text.Render(d.err.Error()))
	case !d.loaded:
		lines = append(lines, styles.MutedText.Render("…"))
	case len(d.entries) == 0:
		lines = append(lines, styles.MutedText.Render("(empty)"))
	}

	for _, e := range d.entries {
		var b strings.Builder
		if !e.Time.IsZero() {
			b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
			b.WriteString(" ")
		}
		if e.Level != "" {
			b.WriteString(styles.LevelStyle(e.Level).Width(5).Render(e.Level))
			b.WriteString(" ")
		}
		if e.Logger != "" {
			b.WriteString(styles.AccentText.Render("[" + e.Logger + "]"))
			b.WriteString(" ")
		}
		b.WriteString(styles.Text.Render(present.SafeText(e.Message)))
		for _, f := range e.Fields {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(f.Key + "="))
			b.WriteString(styles.Text.Render(present.SafeText(f.Value)))
		}
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(b.String()))
	}
	d.viewport.SetContent(strings.Join(lines, "\n"))
}

// View implements Modal.
func (d *diagnosticsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	inner := d.panelWidth() - 4

	status := fmt.Sprintf("%d", len(d.entries))
	content := strings.Join([]string{
		styles.Text.Bold(true).Render("Diagnostics"),
		styles.MutedText.Render(present.Truncate(d.path, inner)),
		"",
		d.viewport.View(),
		"",
		styles.FaintText.Render(status+" · ") + styles.Key.Render("r") + styles.FaintText.Render(" reload · ") +
			styles.Key.Render("esc") + styles.FaintText.Render(" close"),
	}, "\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Width(d.panelWidth() - 2).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		panel,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
