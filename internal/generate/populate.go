package generate

import (
	"delve/assets"
	"delve/internal/gamemap"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Species assets.SpeciesDef
	X, Y    int
}

// Placement holds the initial entity positions produced by Generate.
type Placement struct {
	PlayerX, PlayerY int
	Monsters         []MonsterSpawn
}

// seedMonsters appends between 0 and MaxRoomMonsters spawns inside room's interior.
// Positions are not checked against each other, so two monsters may share a cell.
func seedMonsters(room gamemap.Rect, cfg *Config, out []MonsterSpawn) []MonsterSpawn {
	n := cfg.Rand.Intn(cfg.MaxRoomMonsters + 1)
	for range n {
		x := room.X1 + 1 + cfg.Rand.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + cfg.Rand.Intn(room.Y2-room.Y1-1)
		species := assets.Pick(cfg.Species, cfg.Rand.Float64())
		out = append(out, MonsterSpawn{Species: species, X: x, Y: y})
	}
	return out
}
