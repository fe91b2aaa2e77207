package system

import (
	"delve/internal/ecs"
	"delve/internal/gamemap"
)

// Visibility answers whether a cell is currently in the player's view.
// Sight is treated as mutual: a monster the player can see is alert.
type Visibility interface {
	InFov(x, y int) bool
}

// ReflexTurn runs one memoryless decision for monsterID: out of sight it
// idles, at distance 2 or more it steps toward the player, and adjacent it
// attacks a player with hp left. The bool reports whether an attack happened.
func ReflexTurn(w *ecs.World, gmap *gamemap.GameMap, vis Visibility, monsterID, playerID ecs.EntityID) (AttackResult, bool) {
	monster := w.Get(monsterID)
	if !vis.InFov(monster.Pos.X, monster.Pos.Y) {
		return AttackResult{}, false
	}
	player := w.Get(playerID)

	if monster.Pos.DistanceTo(player.Pos) >= 2.0 {
		MoveTowards(w, gmap, monsterID, player.Pos.X, player.Pos.Y)
		return AttackResult{}, false
	}
	if player.Fighter != nil && player.Fighter.HP > 0 {
		return Attack(w, monsterID, playerID), true
	}
	return AttackResult{}, false
}
