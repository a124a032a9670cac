package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/marauder/internal/catalog"
)

// Field is a labelled value in the detail panel.
type Field struct {
	Label string
	Value string
}

// DetailView is the content of the detail overlay.
type DetailView struct {
	Name           string
	House          string
	HasHouse       bool
	Palette        Palette
	Alive          bool
	Basic          []Field
	Magical        []Field
	AlternateNames []string
	Image          string
}

// Detail maps ch to the detail overlay content.
func Detail(ch *catalog.Character, l Labels) DetailView {
	status := l.StatusDeceased
	if ch.Alive {
		status = l.StatusAlive
	}

	var alternates []string
	for _, name := range ch.AlternateNames {
		if safe := SafeText(name); safe != "" {
			alternates = append(alternates, safe)
		}
	}

	return DetailView{
		Name:     SafeText(ch.Name),
		House:    SafeText(string(ch.House)),
		HasHouse: ch.HasHouse(),
		Palette:  PaletteFor(ch.House),
		Alive:    ch.Alive,
		Basic: []Field{
			{l.Species, orUnknown(ch.Species, l.Unknown)},
			{l.Gender, orUnknown(ch.Gender, l.Unknown)},
			{l.Ancestry, orUnknown(ch.Ancestry, l.Unknown)},
			{l.Born, FormatDate(SafeText(ch.DateOfBirth), l.Unknown)},
			{l.Status, status},
			{l.ActorFull, orUnknown(ch.Actor, l.Unknown)},
		},
		Magical: []Field{
			{l.Patronus, orUnknown(ch.Patronus, l.Unknown)},
			{l.Wand, FormatWand(ch.Wand, l)},
			{l.Student, yesNo(ch.HogwartsStudent, l)},
			{l.Staff, yesNo(ch.HogwartsStaff, l)},
			{l.Wizard, yesNo(ch.Wizard, l)},
		},
		AlternateNames: alternates,
		Image:          orUnknown(ch.Image, l.Unknown),
	}
}

// FormatWand describes a wand from whichever parts are known.
func FormatWand(w catalog.Wand, l Labels) string {
	if w.IsZero() {
		return l.UnknownWand
	}
	var parts []string
	if wood := SafeText(w.Wood); wood != "" {
		parts = append(parts, wood)
	}
	if core := SafeText(w.Core); core != "" {
		parts = append(parts, fmt.Sprintf(l.WandCore, core))
	}
	if w.Length > 0 {
		parts = append(parts, fmt.Sprintf(l.WandLength, strconv.FormatFloat(w.Length, 'f', -1, 64)))
	}
	return strings.Join(parts, ", ")
}

// LabelWidth returns the widest label in fields, for column alignment.
func LabelWidth(fields []Field) int {
	widest := 0
	for _, f := range fields {
		if w := displayWidth(f.Label); w > widest {
			widest = w
		}
	}
	return widest
}

func yesNo(v bool, l Labels) string {
	if v {
		return l.Yes
	}
	return l.No
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
