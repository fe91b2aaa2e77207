package gamemap

import "fmt"

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from a top-left corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// ContainsInterior reports whether (x, y) lies in the carved part of the room,
// which excludes the outer border.
func (r Rect) ContainsInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// GameMap holds the tile grid and the rooms accepted during generation.
// Tiles are stored row-major with a stride of Width.
type GameMap struct {
	Width, Height int
	Tiles         []Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gamemap: invalid size %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

func (m *GameMap) index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[m.index(x, y)]
}

// Set replaces the tile at (x, y). Panics if out of bounds.
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[m.index(x, y)] = t
}

// IsBlocked reports whether the terrain at (x, y) blocks movement.
// Entities are not considered; see system.IsBlocked for that.
func (m *GameMap) IsBlocked(x, y int) bool {
	return m.At(x, y).Blocked
}

// IsTransparent returns true when (x, y) is in bounds and does not block sight.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.Tiles[y*m.Width+x].BlocksSight
}

// FloorCount returns the number of passable tiles.
func (m *GameMap) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if !t.Blocked {
			n++
		}
	}
	return n
}
