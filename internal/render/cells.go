package render

import "github.com/gdamore/tcell/v2"

type cell struct {
	bg    tcell.Color
	ch    rune
	fg    tcell.Color
	drawn bool // background or glyph set this frame
}

// grid is the in-memory frame shared by Screen and Text.
type grid struct {
	width, height int
	cells         []cell
	status        []string
	fullscreen    bool
}

func newGrid(width, height int) grid {
	return grid{width: width, height: height, cells: make([]cell, width*height)}
}

func (g *grid) at(x, y int) *cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

func (g *grid) Clear() {
	clear(g.cells)
	g.status = nil
}

func (g *grid) SetBackground(x, y int, c tcell.Color) {
	if cl := g.at(x, y); cl != nil {
		cl.bg = c
		cl.drawn = true
	}
}

func (g *grid) DrawGlyph(x, y int, ch rune, c tcell.Color) {
	if cl := g.at(x, y); cl != nil {
		cl.ch = ch
		cl.fg = c
		cl.drawn = true
	}
}

func (g *grid) SetStatus(lines []string) {
	g.status = append(g.status[:0], lines...)
}

func (g *grid) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
}

// Fullscreen reports whether the status area is hidden.
func (g *grid) Fullscreen() bool {
	return g.fullscreen
}
