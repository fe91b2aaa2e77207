package component

import "github.com/gdamore/tcell/v2"

// Renderable is the opaque display attribute of an entity.
// The core only swaps it on death; drawing belongs to the render package.
type Renderable struct {
	Glyph rune
	Color tcell.Color
}

// Entity colors.
var (
	ColorCorpse           = tcell.NewRGBColor(191, 0, 0)  // dark red
	ColorDesaturatedGreen = tcell.NewRGBColor(63, 127, 63)
	ColorDarkerGreen      = tcell.NewRGBColor(0, 127, 0)
)

// CorpseRenderable is what every dead fighter turns into.
var CorpseRenderable = Renderable{Glyph: '%', Color: ColorCorpse}
