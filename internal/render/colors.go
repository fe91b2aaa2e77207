package render

import "github.com/gdamore/tcell/v2"

// Palette holds the background colors for terrain by visibility.
type Palette struct {
	DarkWall    tcell.Color
	DarkGround  tcell.Color
	LightWall   tcell.Color
	LightGround tcell.Color
}

// DefaultPalette is the classic blue-and-amber dungeon.
var DefaultPalette = Palette{
	DarkWall:    tcell.NewRGBColor(0, 0, 100),
	DarkGround:  tcell.NewRGBColor(50, 50, 150),
	LightWall:   tcell.NewRGBColor(0, 0, 100),
	LightGround: tcell.NewRGBColor(200, 180, 50),
}

// Terrain picks the background for a cell.
func (p Palette) Terrain(visible, wall bool) tcell.Color {
	switch {
	case visible && wall:
		return p.LightWall
	case visible:
		return p.LightGround
	case wall:
		return p.DarkWall
	default:
		return p.DarkGround
	}
}

// IsWall reports whether c is one of the palette's wall colors.
func (p Palette) IsWall(c tcell.Color) bool {
	return c == p.DarkWall || c == p.LightWall
}
