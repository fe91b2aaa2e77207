package ecs

import "delve/internal/component"

// EntityID is a stable index into the World. Entities are never removed,
// so an ID stays valid for the lifetime of the World.
type EntityID int

// NilEntity is never assigned to a spawned entity.
const NilEntity EntityID = -1

// Entity is the single entity shape used for the player, monsters and corpses.
// Capabilities are optional: a nil Fighter cannot be attacked and a nil AI never acts.
type Entity struct {
	Pos     component.Position
	Render  component.Renderable
	Name    string
	Blocks  bool
	Alive   bool
	Fighter *component.Fighter
	AI      *component.AI
}

// At reports whether the entity stands on (x, y).
func (e *Entity) At(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}
