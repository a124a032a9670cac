package present

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// SafeText strips escape sequences and control characters so record text
// cannot restyle or move the terminal cursor. Runs of whitespace collapse.
func SafeText(s string) string {
	s = ansi.Strip(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most width terminal cells, ending with "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// FormatDate turns DD-MM-YYYY into DD/MM/YYYY. Empty input gives unknown;
// anything not in three dash-separated parts is returned as is.
func FormatDate(value, unknown string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return unknown
	}
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return value
	}
	return parts[0] + "/" + parts[1] + "/" + parts[2]
}

func orUnknown(value, unknown string) string {
	value = SafeText(value)
	if value == "" {
		return unknown
	}
	return value
}
