package generate

import "delve/assets"

// Rand is the randomness the generator draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Config drives procedural generation for one dungeon.
type Config struct {
	MapWidth, MapHeight int
	RoomMinSize         int
	RoomMaxSize         int
	MaxRooms            int // placement attempts, not a room count
	MaxRoomMonsters     int
	Species             []assets.SpeciesDef
	Rand                Rand
}

// DefaultConfig returns the classic 80x45 layout seeded from r.
func DefaultConfig(r Rand) *Config {
	return &Config{
		MapWidth:        80,
		MapHeight:       45,
		RoomMinSize:     10,
		RoomMaxSize:     10,
		MaxRooms:        40,
		MaxRoomMonsters: 3,
		Species:         assets.Species,
		Rand:            r,
	}
}
