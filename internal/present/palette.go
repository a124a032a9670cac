package present

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/marauder/internal/catalog"
)

// Palette is the set of colors a card or detail panel uses for one house.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Light     string
}

// DefaultPalette applies to characters without a known house.
var DefaultPalette = Palette{Primary: "#2C3E50", Secondary: "#95A5A6", Accent: "#ECF0F1", Light: "#EAEDED"}

var housePalettes = map[catalog.House]Palette{
	catalog.Gryffindor: {Primary: "#740001", Secondary: "#D3A625", Accent: "#EEBA30", Light: "#FFD8A8"},
	catalog.Slytherin:  {Primary: "#1A472A", Secondary: "#5D5D5D", Accent: "#AAAAAA", Light: "#C0C0C0"},
	catalog.Hufflepuff: {Primary: "#FFD800", Secondary: "#000000", Accent: "#60605C", Light: "#FFF4BD"},
	catalog.Ravenclaw:  {Primary: "#0E1A40", Secondary: "#946B2D", Accent: "#5D5D5D", Light: "#B2C8E0"},
}

// PaletteFor returns the palette for house, or DefaultPalette when house is
// not one of the four.
func PaletteFor(house catalog.House) Palette {
	if !house.Valid() {
		return DefaultPalette
	}
	return housePalettes[house]
}

// Gradient returns width colors blending Primary into Secondary.
func Gradient(p Palette, width int) []string {
	if width <= 0 {
		return nil
	}
	from, err := colorful.Hex(p.Primary)
	if err != nil {
		from, _ = colorful.Hex(DefaultPalette.Primary)
	}
	to, err := colorful.Hex(p.Secondary)
	if err != nil {
		to, _ = colorful.Hex(DefaultPalette.Secondary)
	}
	out := make([]string, width)
	if width == 1 {
		out[0] = from.Hex()
		return out
	}
	for i := range out {
		t := float64(i) / float64(width-1)
		out[i] = from.BlendLab(to, t).Clamped().Hex()
	}
	return out
}

// ReadableOn picks black or white text for the given background color.
func ReadableOn(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "#FFFFFF"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
