package ui

// Grid sizing.
const (
	// cardMinWidth is the narrowest a card may get before a column is dropped.
	cardMinWidth = 26

	// cardMaxColumns caps the grid at four columns.
	cardMaxColumns = 4

	// cardHeight is the rendered height of a card including its border.
	cardHeight = 7

	// cardGap is the number of blank cells between columns.
	cardGap = 1

	// frameMargin is the blank column on each side of the page.
	frameMargin = 1
)

// Rows above the grid: title, subtitle, blank, controls, readout, blank.
const (
	controlsRow = 3
	gridTop     = 6
)

// Rows below the grid: blank, pager, footer.
const chromeBottom = 3

// Overlay sizing.
const (
	detailMaxWidth = 78
	helpWidth      = 46
	diagMaxWidth   = 110
	diagTailLines  = 400
)

// gridLayout describes where cards land on screen for a given terminal size.
type gridLayout struct {
	columns   int
	cardWidth int
	rows      int // visible card rows
}

func computeGridLayout(width, height int) gridLayout {
	usable := width - 2*frameMargin
	if usable < 1 {
		usable = 1
	}
	columns := (usable + cardGap) / (cardMinWidth + cardGap)
	if columns < 1 {
		columns = 1
	}
	if columns > cardMaxColumns {
		columns = cardMaxColumns
	}
	cardWidth := (usable - (columns-1)*cardGap) / columns
	if cardWidth < 1 {
		cardWidth = 1
	}
	rows := (height - gridTop - chromeBottom) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return gridLayout{columns: columns, cardWidth: cardWidth, rows: rows}
}

// cardAt maps a screen cell to an index into the visible page, or -1.
// rowOffset is the first card row currently shown.
func (g gridLayout) cardAt(x, y, rowOffset, count int) int {
	if y < gridTop || x < frameMargin {
		return -1
	}
	row := (y - gridTop) / cardHeight
	if row >= g.rows {
		return -1
	}
	rel := x - frameMargin
	col := rel / (g.cardWidth + cardGap)
	if col >= g.columns || rel%(g.cardWidth+cardGap) >= g.cardWidth {
		return -1
	}
	idx := (row+rowOffset)*g.columns + col
	if idx >= count {
		return -1
	}
	return idx
}

// gridHeight is the number of screen rows the grid occupies for count cards.
func (g gridLayout) gridHeight(count, rowOffset int) int {
	total := (count + g.columns - 1) / g.columns
	visible := total - rowOffset
	if visible > g.rows {
		visible = g.rows
	}
	if visible < 1 {
		visible = 1
	}
	return visible * cardHeight
}
