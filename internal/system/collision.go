package system

import (
	"delve/internal/ecs"
	"delve/internal/gamemap"
)

// IsBlocked reports whether (x, y) holds blocking terrain or a blocking entity.
// Panics if (x, y) is outside gmap.
func IsBlocked(gmap *gamemap.GameMap, w *ecs.World, x, y int) bool {
	if gmap.IsBlocked(x, y) {
		return true
	}
	_, ok := w.BlockingAt(x, y)
	return ok
}
