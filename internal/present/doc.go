// Package present maps character records to what the screen shows.
//
// Nothing here touches the terminal. Card and Detail turn a catalog.Character
// into plain strings and colors; the ui package only lays them out. Keeping
// the mapping pure lets the placeholder and formatting rules be tested
// directly.
//
// Missing values never surface as empty cells: every optional detail field
// falls back to Labels.Unknown, and birth dates stored as DD-MM-YYYY are shown
// as DD/MM/YYYY.
package present
