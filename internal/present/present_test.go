package present

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marauder/internal/catalog"
)

func TestPaletteForFallsBackToDefault(t *testing.T) {
	require.Equal(t, "#740001", PaletteFor(catalog.Gryffindor).Primary)
	require.Equal(t, "#0E1A40", PaletteFor(catalog.Ravenclaw).Primary)
	require.Equal(t, DefaultPalette, PaletteFor(""))
	require.Equal(t, DefaultPalette, PaletteFor("gryffindor"))
	for _, h := range catalog.Houses() {
		require.NotEqual(t, DefaultPalette, PaletteFor(h), "house %s", h)
	}
}

func TestGradientEndpoints(t *testing.T) {
	p := PaletteFor(catalog.Slytherin)
	g := Gradient(p, 5)
	require.Len(t, g, 5)
	assert.True(t, strings.EqualFold(p.Primary, g[0]), "first %s", g[0])
	assert.True(t, strings.EqualFold(p.Secondary, g[4]), "last %s", g[4])
	require.Nil(t, Gradient(p, 0))
	require.Len(t, Gradient(p, 1), 1)
}

func TestReadableOn(t *testing.T) {
	assert.Equal(t, "#000000", ReadableOn("#FFD800"))
	assert.Equal(t, "#FFFFFF", ReadableOn("#0E1A40"))
	assert.Equal(t, "#FFFFFF", ReadableOn("not-a-color"))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"31-07-1980", "31/07/1980"},
		{"", "Desconocido"},
		{"   ", "Desconocido"},
		{"1980", "1980"},
		{"31-07", "31-07"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in, "Desconocido"); got != tt.want {
			t.Fatalf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeTextStripsEscapes(t *testing.T) {
	require.Equal(t, "Harry Potter", SafeText("\x1b[31mHarry\x1b[0m\tPotter\n"))
	require.Equal(t, "", SafeText("\x1b[2J"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "Hermione", Truncate("Hermione", 8))
	got := Truncate("Hermione Granger", 8)
	require.LessOrEqual(t, len([]rune(got)), 8)
	require.True(t, strings.HasSuffix(got, "…"))
	require.Equal(t, "", Truncate("anything", 0))
}

func TestCard(t *testing.T) {
	l := LabelsFor("es")
	harry := &catalog.Character{ID: "1", Name: "Harry Potter", House: catalog.Gryffindor, Alive: true, Actor: "Daniel Radcliffe", Species: "human"}
	c := Card(harry, 30, l)
	require.Equal(t, "Harry Potter", c.Name)
	require.Equal(t, "Gryffindor", c.House)
	require.Equal(t, "VIVO", c.Badge)
	require.True(t, c.HasHouse)
	require.Same(t, harry, c.Character)
	require.Equal(t, PaletteFor(catalog.Gryffindor), c.Palette)

	filch := &catalog.Character{Name: "Argus Filch"}
	c = Card(filch, 30, l)
	require.Equal(t, "Sin casa", c.House)
	require.Equal(t, "FALLECIDO", c.Badge)
	require.False(t, c.HasHouse)
	require.Equal(t, DefaultPalette, c.Palette)
}

func TestDetailUnknownFallbacks(t *testing.T) {
	l := LabelsFor("es")
	d := Detail(&catalog.Character{Name: "Dobby", Species: "house-elf"}, l)

	values := fieldMap(append(d.Basic, d.Magical...))
	require.Equal(t, "house-elf", values["Especie"])
	require.Equal(t, "Desconocido", values["Patronus"])
	require.Equal(t, "Desconocido", values["Nacimiento"])
	require.Equal(t, "Desconocido", values["Género"])
	require.Equal(t, "Desconocida", values["Varita"])
	require.Equal(t, "Fallecido", values["Estado"])
	require.Equal(t, "No", values["Mago"])
	require.Empty(t, d.AlternateNames)
	require.Equal(t, "Desconocido", d.Image)
}

func TestDetailFullRecord(t *testing.T) {
	l := LabelsFor("es")
	d := Detail(&catalog.Character{
		Name:            "Harry Potter",
		House:           catalog.Gryffindor,
		DateOfBirth:     "31-07-1980",
		Patronus:        "stag",
		Wand:            catalog.Wand{Wood: "holly", Core: "phoenix tail feather", Length: 11},
		HogwartsStudent: true,
		Wizard:          true,
		Alive:           true,
		AlternateNames:  []string{"The Boy Who Lived", " ", "The Chosen One"},
	}, l)

	values := fieldMap(append(d.Basic, d.Magical...))
	require.Equal(t, "31/07/1980", values["Nacimiento"])
	require.Equal(t, "stag", values["Patronus"])
	require.Equal(t, "holly, núcleo de phoenix tail feather, 11 pulgadas", values["Varita"])
	require.Equal(t, "Sí", values["Estudiante de Hogwarts"])
	require.Equal(t, "No", values["Personal de Hogwarts"])
	require.Equal(t, "Vivo", values["Estado"])
	require.Equal(t, []string{"The Boy Who Lived", "The Chosen One"}, d.AlternateNames)
}

func TestFormatWandPartial(t *testing.T) {
	l := LabelsFor("en")
	require.Equal(t, "12.5 inches", FormatWand(catalog.Wand{Length: 12.5}, l))
	require.Equal(t, "vine, dragon heartstring core", FormatWand(catalog.Wand{Wood: "vine", Core: "dragon heartstring"}, l))
	require.Equal(t, "Unknown", FormatWand(catalog.Wand{}, l))
}

func TestLabelsFor(t *testing.T) {
	require.Equal(t, "es", LabelsFor("").Locale)
	require.Equal(t, "es", LabelsFor("fr").Locale)
	require.Equal(t, "en", LabelsFor(" EN ").Locale)
	for _, loc := range Locales() {
		l := LabelsFor(loc)
		require.NotEmpty(t, l.Unknown, loc)
		require.Len(t, l.SortOptions, 3, loc)
	}
}

func fieldMap(fields []Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Label] = f.Value
	}
	return m
}
