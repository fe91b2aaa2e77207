package system

import (
	"math"

	"delve/internal/ecs"
	"delve/internal/gamemap"
)

// MoveBy shifts entity id by (dx, dy) unless the destination is blocked or off
// the map. Reports whether the entity moved.
func MoveBy(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) bool {
	e := w.Get(id)
	nx, ny := e.Pos.X+dx, e.Pos.Y+dy
	if !gmap.InBounds(nx, ny) || IsBlocked(gmap, w, nx, ny) {
		return false
	}
	e.Pos.X, e.Pos.Y = nx, ny
	return true
}

// MoveTowards takes one step from entity id toward (tx, ty). Each axis of the
// direction vector is normalised and rounded, so diagonal steps are possible.
// There is no obstacle avoidance: a blocked step is simply lost.
func MoveTowards(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, tx, ty int) bool {
	e := w.Get(id)
	dx, dy := tx-e.Pos.X, ty-e.Pos.Y
	dist := math.Hypot(float64(dx), float64(dy))
	if dist == 0 {
		return false
	}
	stepX := int(math.Round(float64(dx) / dist))
	stepY := int(math.Round(float64(dy) / dist))
	return MoveBy(w, gmap, id, stepX, stepY)
}
