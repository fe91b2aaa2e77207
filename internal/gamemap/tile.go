package gamemap

// Tile holds the terrain and memory state for one map cell.
type Tile struct {
	Blocked     bool
	BlocksSight bool
	Explored    bool // set once the tile has ever been visible; never cleared
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{}
}

// IsWall reports whether the tile is impassable and opaque.
func (t Tile) IsWall() bool {
	return t.Blocked && t.BlocksSight
}
