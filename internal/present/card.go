package present

import "github.com/five82/marauder/internal/catalog"

// CardView is one cell of the character grid.
type CardView struct {
	Name      string
	House     string
	HasHouse  bool
	Palette   Palette
	Badge     string
	Alive     bool
	Actor     string
	Species   string
	Character *catalog.Character
}

// Card maps ch to a grid cell whose text fits in width cells.
func Card(ch *catalog.Character, width int, l Labels) CardView {
	house := l.NoHouse
	if ch.HasHouse() {
		house = SafeText(string(ch.House))
	}
	badge := l.Deceased
	if ch.Alive {
		badge = l.Alive
	}
	return CardView{
		Name:      Truncate(SafeText(ch.Name), width),
		House:     Truncate(house, width),
		HasHouse:  ch.HasHouse(),
		Palette:   PaletteFor(ch.House),
		Badge:     badge,
		Alive:     ch.Alive,
		Actor:     Truncate(SafeText(ch.Actor), width-displayWidth(l.Actor)-1),
		Species:   Truncate(SafeText(ch.Species), width-displayWidth(l.Species)-1),
		Character: ch,
	}
}
