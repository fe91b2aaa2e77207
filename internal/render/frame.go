package render

import (
	"sort"

	"delve/internal/ecs"
	"delve/internal/gamemap"
)

// Visibility answers whether a cell is in the player's current view.
type Visibility interface {
	InFov(x, y int) bool
}

// DrawFrame paints terrain and entities onto d. Tiles that are neither visible
// nor explored stay blank. Entities are drawn only when their cell is visible,
// non-blocking ones first so a living creature is never hidden by a corpse.
// The caller sets status lines and calls Present.
func DrawFrame(d Display, w *ecs.World, gmap *gamemap.GameMap, vis Visibility, p Palette) {
	d.Clear()

	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			visible := vis.InFov(x, y)
			tile := gmap.At(x, y)
			if !visible && !tile.Explored {
				continue
			}
			d.SetBackground(x, y, p.Terrain(visible, tile.IsWall()))
		}
	}

	ids := w.Query(func(e *ecs.Entity) bool { return vis.InFov(e.Pos.X, e.Pos.Y) })
	sort.SliceStable(ids, func(i, j int) bool {
		return !w.Get(ids[i]).Blocks && w.Get(ids[j]).Blocks
	})
	for _, id := range ids {
		e := w.Get(id)
		d.DrawGlyph(e.Pos.X, e.Pos.Y, e.Render.Glyph, e.Render.Color)
	}
}
