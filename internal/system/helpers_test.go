package system

import (
	"delve/internal/component"
	"delve/internal/ecs"
	"delve/internal/gamemap"
)

// openMap creates a map whose interior is floor and whose border is wall.
func openMap(width, height int) *gamemap.GameMap {
	gmap := gamemap.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gmap
}

func spawnFighter(w *ecs.World, name string, x, y, hp, def, pow int, policy component.DeathPolicy) ecs.EntityID {
	return w.Spawn(ecs.Entity{
		Pos:    component.Position{X: x, Y: y},
		Render: component.Renderable{Glyph: rune(name[0])},
		Name:   name,
		Blocks: true,
		Alive:  true,
		Fighter: &component.Fighter{
			MaxHP: hp, HP: hp, Defense: def, Power: pow, OnDeath: policy,
		},
	})
}

func spawnMonster(w *ecs.World, x, y int) ecs.EntityID {
	id := spawnFighter(w, "orc", x, y, 10, 0, 3, component.MonsterDeath)
	w.Get(id).AI = &component.AI{}
	return id
}

// allVisible and noneVisible are fixed Visibility fakes.
type allVisible struct{}

func (allVisible) InFov(int, int) bool { return true }

type noneVisible struct{}

func (noneVisible) InFov(int, int) bool { return false }
