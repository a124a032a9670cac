package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// House is a Hogwarts house as spelled in the asset.
type House string

const (
	Gryffindor House = "Gryffindor"
	Slytherin  House = "Slytherin"
	Hufflepuff House = "Hufflepuff"
	Ravenclaw  House = "Ravenclaw"
)

var houses = []House{Gryffindor, Slytherin, Hufflepuff, Ravenclaw}

// Houses returns the four houses in display order.
func Houses() []House {
	out := make([]House, len(houses))
	copy(out, houses)
	return out
}

// Valid reports whether h is one of the four houses. Matching is case-sensitive.
func (h House) Valid() bool {
	for _, known := range houses {
		if h == known {
			return true
		}
	}
	return false
}

// Character mirrors one entry of the catalog asset.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AlternateNames  []string `json:"alternate_names"`
	Species         string   `json:"species"`
	Gender          string   `json:"gender"`
	House           House    `json:"house"`
	DateOfBirth     string   `json:"dateOfBirth"`
	Wizard          bool     `json:"wizard"`
	Ancestry        string   `json:"ancestry"`
	Wand            Wand     `json:"wand"`
	Patronus        string   `json:"patronus"`
	HogwartsStudent bool     `json:"hogwartsStudent"`
	HogwartsStaff   bool     `json:"hogwartsStaff"`
	Actor           string   `json:"actor"`
	Alive           bool     `json:"alive"`
	Image           string   `json:"image"`
}

// HasHouse reports whether the character belongs to any house at all.
func (c Character) HasHouse() bool {
	return strings.TrimSpace(string(c.House)) != ""
}

// Wand describes a character's wand. Length is in inches; zero means unknown.
type Wand struct {
	Wood   string  `json:"wood"`
	Core   string  `json:"core"`
	Length float64 `json:"length"`
}

// IsZero reports whether nothing is known about the wand.
func (w Wand) IsZero() bool {
	return strings.TrimSpace(w.Wood) == "" && strings.TrimSpace(w.Core) == "" && w.Length <= 0
}

// UnmarshalJSON decodes a wand leniently. A field of the wrong type, a
// non-numeric length or a wand that is not an object leaves that part unknown.
func (w *Wand) UnmarshalJSON(data []byte) error {
	*w = Wand{}
	var raw struct {
		Wood   json.RawMessage `json:"wood"`
		Core   json.RawMessage `json:"core"`
		Length json.RawMessage `json:"length"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	w.Wood = looseString(raw.Wood)
	w.Core = looseString(raw.Core)
	w.Length = looseFloat(raw.Length)
	return nil
}

func looseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// looseFloat accepts a JSON number or a numeric string; anything else is 0.
func looseFloat(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
