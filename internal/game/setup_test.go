package game

import (
	"testing"

	"delve/assets"
	"delve/internal/fov"
)

func TestBuildOptionsAppliesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Map.Width, cfg.Map.Height = 60, 30
	cfg.Rooms.MinSize, cfg.Rooms.MaxSize, cfg.Rooms.MaxAttempts = 4, 8, 12
	cfg.Monsters.MaxPerRoom = 1
	cfg.FOV.Algorithm = "Shadowcast"

	gen, opts, err := buildOptions(cfg, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer opts.Cache.Close()

	if gen.MapWidth != 60 || gen.MapHeight != 30 {
		t.Errorf("map = %dx%d; want 60x30", gen.MapWidth, gen.MapHeight)
	}
	if gen.RoomMinSize != 4 || gen.RoomMaxSize != 8 || gen.MaxRooms != 12 || gen.MaxRoomMonsters != 1 {
		t.Errorf("gen = %+v", gen)
	}
	if len(gen.Species) != len(assets.Species) || gen.Rand == nil {
		t.Error("species table and rng should come from the defaults")
	}
	if opts.Algorithm != fov.AlgorithmShadowcast || opts.FOVRadius != 10 || !opts.LightWalls {
		t.Errorf("opts = %+v", opts)
	}
}

func TestResolveSeed(t *testing.T) {
	if ResolveSeed(42) != 42 {
		t.Error("explicit seed must be kept")
	}
	if ResolveSeed(0) == 0 {
		t.Error("zero seed should be replaced")
	}
}
