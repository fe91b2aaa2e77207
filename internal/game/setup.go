package game

import (
	"fmt"
	"math/rand"
	"time"

	"delve/internal/config"
	"delve/internal/fov"
	"delve/internal/generate"
)

// fovCacheBytes bounds memoised visible sets per game.
const fovCacheBytes = 8 << 20

// ResolveSeed returns seed, or a time-based seed when it is 0.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// buildOptions turns configuration into generator and engine settings.
func buildOptions(cfg *config.Config, seed int64) (*generate.Config, Options, error) {
	algo, err := fov.ParseAlgorithm(cfg.FOV.Algorithm)
	if err != nil {
		return nil, Options{}, err
	}
	cache, err := fov.NewCache(fovCacheBytes)
	if err != nil {
		return nil, Options{}, fmt.Errorf("game: %w", err)
	}
	gen := generate.DefaultConfig(rand.New(rand.NewSource(seed)))
	gen.MapWidth, gen.MapHeight = cfg.Map.Width, cfg.Map.Height
	gen.RoomMinSize, gen.RoomMaxSize = cfg.Rooms.MinSize, cfg.Rooms.MaxSize
	gen.MaxRooms = cfg.Rooms.MaxAttempts
	gen.MaxRoomMonsters = cfg.Monsters.MaxPerRoom
	opts := Options{
		FOVRadius:  cfg.FOV.Radius,
		LightWalls: cfg.FOV.LightWalls,
		Algorithm:  algo,
		Cache:      cache,
	}
	return gen, opts, nil
}
