package ui

import (
	"testing"

	"github.com/five82/marauder/internal/present"
	"github.com/five82/marauder/internal/state"
)

func TestComputeGridLayoutColumns(t *testing.T) {
	tests := []struct {
		width   int
		columns int
	}{
		{width: 20, columns: 1},
		{width: 60, columns: 2},
		{width: 90, columns: 3},
		{width: 120, columns: 4},
		{width: 400, columns: 4},
	}
	for _, tt := range tests {
		g := computeGridLayout(tt.width, 40)
		if g.columns != tt.columns {
			t.Fatalf("width %d: columns = %d, want %d", tt.width, g.columns, tt.columns)
		}
		used := g.columns*g.cardWidth + (g.columns-1)*cardGap
		if tt.width >= cardMinWidth+2*frameMargin && used > tt.width-2*frameMargin {
			t.Fatalf("width %d: cards use %d cells, more than available", tt.width, used)
		}
	}
}

func TestComputeGridLayoutRows(t *testing.T) {
	if g := computeGridLayout(120, 10); g.rows != 1 {
		t.Fatalf("short terminal rows = %d, want 1", g.rows)
	}
	if g := computeGridLayout(120, gridTop+chromeBottom+2*cardHeight); g.rows != 2 {
		t.Fatalf("rows = %d, want 2", g.rows)
	}
}

func TestCardAt(t *testing.T) {
	g := gridLayout{columns: 3, cardWidth: 10, rows: 2}
	tests := []struct {
		name      string
		x, y      int
		rowOffset int
		count     int
		want      int
	}{
		{name: "first card", x: frameMargin, y: gridTop, count: 8, want: 0},
		{name: "gap between cards", x: frameMargin + 10, y: gridTop, count: 8, want: -1},
		{name: "second column", x: frameMargin + 11, y: gridTop + 3, count: 8, want: 1},
		{name: "second row", x: frameMargin + 22, y: gridTop + cardHeight, count: 8, want: 5},
		{name: "scrolled", x: frameMargin, y: gridTop, rowOffset: 1, count: 8, want: 3},
		{name: "above grid", x: frameMargin, y: gridTop - 1, count: 8, want: -1},
		{name: "past last card", x: frameMargin + 22, y: gridTop + cardHeight, count: 5, want: -1},
		{name: "below visible rows", x: frameMargin, y: gridTop + 2*cardHeight, count: 8, want: -1},
		{name: "right of grid", x: frameMargin + 40, y: gridTop, count: 8, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.cardAt(tt.x, tt.y, tt.rowOffset, tt.count); got != tt.want {
				t.Fatalf("cardAt(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPagerSegmentsLayout(t *testing.T) {
	m := New(Options{Labels: present.LabelsFor("es")})
	view := state.View{Page: 5, TotalPages: 10}

	segs := m.pagerSegments(view)
	var texts []string
	for _, s := range segs {
		texts = append(texts, s.text)
	}
	want := []string{"‹ Anterior", " 1 ", "…", " 4 ", " 5 ", " 6 ", "…", " 10 ", "Siguiente ›"}
	if len(texts) != len(want) {
		t.Fatalf("segments = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("segment %d = %q, want %q", i, texts[i], want[i])
		}
	}

	if segs[0].x != frameMargin {
		t.Fatalf("first segment at %d, want %d", segs[0].x, frameMargin)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].x != segs[i-1].x+segs[i-1].width()+1 {
			t.Fatalf("segment %d at %d does not follow %d", i, segs[i].x, i-1)
		}
	}
	if !segs[4].current || segs[4].enabled {
		t.Fatalf("current page segment = %+v", segs[4])
	}
	if segs[2].page != 0 {
		t.Fatalf("ellipsis should not be clickable")
	}

	if got := m.pagerSegments(state.View{Page: 1, TotalPages: 1}); got != nil {
		t.Fatalf("single page pager = %v, want nil", got)
	}
}

func TestPlacedOriginMatchesCentering(t *testing.T) {
	x, y := placedOrigin(120, 50, 78, 21)
	if x != 21 || y != 14 {
		t.Fatalf("placedOrigin = %d,%d, want 21,14", x, y)
	}
	x, y = placedOrigin(40, 10, 78, 30)
	if x != 0 || y != 0 {
		t.Fatalf("oversized block origin = %d,%d, want 0,0", x, y)
	}
}
