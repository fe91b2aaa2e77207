// Package render draws the dungeon onto a Display.
package render

import "github.com/gdamore/tcell/v2"

// Display is the drawing surface the game writes a frame to.
// Coordinates are map cells; implementations map them onto their own output.
type Display interface {
	// Clear resets every cell and the status lines.
	Clear()
	SetBackground(x, y int, c tcell.Color)
	DrawGlyph(x, y int, ch rune, c tcell.Color)
	// SetStatus replaces the lines shown below the map.
	SetStatus(lines []string)
	// Present flushes the frame to the output.
	Present()
	// ToggleFullscreen switches between map-only and map plus status view.
	ToggleFullscreen()
}
