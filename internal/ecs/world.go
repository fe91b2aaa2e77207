package ecs

import "fmt"

// World is the ordered entity registry. Iteration order is registration order.
type World struct {
	entities []*Entity
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{}
}

// Spawn appends e to the registry and returns its ID.
func (w *World) Spawn(e Entity) EntityID {
	id := EntityID(len(w.entities))
	w.entities = append(w.entities, &e)
	return id
}

// Len returns the number of registered entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Valid reports whether id refers to a registered entity.
func (w *World) Valid(id EntityID) bool {
	return id >= 0 && int(id) < len(w.entities)
}

// Get returns the entity for id. Panics on an unknown ID.
func (w *World) Get(id EntityID) *Entity {
	if !w.Valid(id) {
		panic(fmt.Sprintf("ecs: invalid entity id %d (registry size %d)", id, len(w.entities)))
	}
	return w.entities[id]
}

// Pair returns two distinct entities for simultaneous mutation
// (attacker and target). Panics when a == b.
func (w *World) Pair(a, b EntityID) (*Entity, *Entity) {
	if a == b {
		panic(fmt.Sprintf("ecs: Pair called with identical ids %d", a))
	}
	return w.Get(a), w.Get(b)
}

// IDs returns every entity ID in registration order.
func (w *World) IDs() []EntityID {
	ids := make([]EntityID, len(w.entities))
	for i := range ids {
		ids[i] = EntityID(i)
	}
	return ids
}

// BlockingAt returns the first blocking entity standing on (x, y).
func (w *World) BlockingAt(x, y int) (EntityID, bool) {
	for i, e := range w.entities {
		if e.Blocks && e.At(x, y) {
			return EntityID(i), true
		}
	}
	return NilEntity, false
}

// FighterAt returns the first entity with a Fighter standing on (x, y).
func (w *World) FighterAt(x, y int) (EntityID, bool) {
	for i, e := range w.entities {
		if e.Fighter != nil && e.At(x, y) {
			return EntityID(i), true
		}
	}
	return NilEntity, false
}

// Query returns the IDs of entities for which match returns true.
func (w *World) Query(match func(*Entity) bool) []EntityID {
	var result []EntityID
	for i, e := range w.entities {
		if match(e) {
			result = append(result, EntityID(i))
		}
	}
	return result
}
