package factory

import (
	"delve/assets"
	"delve/internal/component"
	"delve/internal/ecs"
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	def := assets.PlayerDef
	return w.Spawn(ecs.Entity{
		Pos:    component.Position{X: x, Y: y},
		Render: component.Renderable{Glyph: def.Glyph, Color: def.Color},
		Name:   def.Name,
		Blocks: true,
		Alive:  true,
		Fighter: &component.Fighter{
			MaxHP:   def.MaxHP,
			HP:      def.MaxHP,
			Defense: def.Defense,
			Power:   def.Power,
			OnDeath: component.PlayerDeath,
		},
	})
}

// NewMonster creates a monster of the given species at (x, y).
func NewMonster(w *ecs.World, def assets.SpeciesDef, x, y int) ecs.EntityID {
	return w.Spawn(ecs.Entity{
		Pos:    component.Position{X: x, Y: y},
		Render: component.Renderable{Glyph: def.Glyph, Color: def.Color},
		Name:   def.Name,
		Blocks: true,
		Alive:  true,
		Fighter: &component.Fighter{
			MaxHP:   def.MaxHP,
			HP:      def.MaxHP,
			Defense: def.Defense,
			Power:   def.Power,
			OnDeath: component.MonsterDeath,
		},
		AI: &component.AI{},
	})
}
