// Package ui implements marauder's terminal interface with Bubble Tea.
//
// # Architecture
//
// Model is a value type following the Elm architecture: Init issues the one
// catalog load, Update applies messages, and View renders from state. The
// browser's data lives in a *state.ViewState; every filter, page or selection
// change goes through its update methods so the page reset rules hold.
//
// # Screen Layout
//
//	Title
//	Subtitle
//
//	[/ search        ]  ‹ House ›  Sort by: Name
//	Showing X of Y characters
//
//	╭card╮ ╭card╮ ╭card╮ ╭card╮
//	╰────╯ ╰────╯ ╰────╯ ╰────╯
//
//	‹ Prev  1  …  4 [5] 6  …  10  Next ›
//	Footer                              ? help
//
// The grid has one to four columns depending on terminal width. Rows that do
// not fit scroll with the card cursor; changing page scrolls back to the top.
// Row offsets are fixed (see layout.go) so mouse clicks can be mapped back to
// cards and pager labels without storing render output.
//
// # Overlays
//
// Three layers can cover the page, checked in this order:
//
//   - Modal: the help and diagnostics overlays (modal.go) take all input
//   - Detail: shown exactly when a character is selected
//   - Loading: a spinner until the catalog load settles
//
// A failed load is not an error screen: the page renders with zero results,
// and the cause is in the log file, viewable with the diagnostics overlay.
//
// # Themes
//
// Theme colors drive the chrome; each card and the detail panel use the
// palette of the character's house. Cycling the theme persists the choice
// through the prefs package.
package ui
