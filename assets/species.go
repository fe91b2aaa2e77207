package assets

import (
	"delve/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used for entities.
const (
	GlyphPlayer = '@'
	GlyphOrc    = 'o'
	GlyphTroll  = 'T'
	GlyphCorpse = '%'
)

// SpeciesDef describes a monster kind and its share of room spawns.
// Chance values of a table are cumulative-summed in order, so their total
// should be 1.
type SpeciesDef struct {
	Name    string
	Glyph   rune
	Color   tcell.Color
	MaxHP   int
	Defense int
	Power   int
	Chance  float64
}

// PlayerDef is the fixed stat line for the player.
var PlayerDef = SpeciesDef{
	Name:    "player",
	Glyph:   GlyphPlayer,
	Color:   tcell.ColorWhite,
	MaxHP:   30,
	Defense: 2,
	Power:   5,
}

// Species is the default monster table.
var Species = []SpeciesDef{
	{
		Name:    "orc",
		Glyph:   GlyphOrc,
		Color:   component.ColorDesaturatedGreen,
		MaxHP:   10,
		Defense: 0,
		Power:   3,
		Chance:  0.8,
	},
	{
		Name:    "troll",
		Glyph:   GlyphTroll,
		Color:   component.ColorDarkerGreen,
		MaxHP:   16,
		Defense: 1,
		Power:   4,
		Chance:  0.2,
	},
}

// Pick selects a species from table for a roll in [0,1) by cumulative chance.
// Rolls past the table total fall back to the last entry.
func Pick(table []SpeciesDef, roll float64) SpeciesDef {
	acc := 0.0
	for _, s := range table {
		acc += s.Chance
		if roll < acc {
			return s
		}
	}
	return table[len(table)-1]
}

// ByName looks up a species by name.
func ByName(table []SpeciesDef, name string) (SpeciesDef, bool) {
	for _, s := range table {
		if s.Name == name {
			return s, true
		}
	}
	return SpeciesDef{}, false
}
