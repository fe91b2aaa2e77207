package generate

import (
	"context"
	"time"

	"delve/internal/gamemap"
	"delve/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// Generate builds a dungeon by random room placement and returns the map with
// the initial player and monster positions.
//
// Each of cfg.MaxRooms attempts draws width, height, x and y in that order.
// Attempts that intersect an accepted room are discarded. Every accepted room
// after the first is tunnelled to its predecessor, so all rooms form one
// connected chain. When no room is accepted the player spawn stays at (0,0).
func Generate(ctx context.Context, cfg *Config) (*gamemap.GameMap, Placement) {
	tracer := telemetry.Tracer("generate")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	var placement Placement

	for range cfg.MaxRooms {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := cfg.Rand.Intn(cfg.MapWidth - w)
		y := cfg.Rand.Intn(cfg.MapHeight - h)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}

		carveRoom(gmap, room)
		cx, cy := room.Center()
		if len(gmap.Rooms) == 0 {
			placement.PlayerX, placement.PlayerY = cx, cy
		} else {
			px, py := gmap.Rooms[len(gmap.Rooms)-1].Center()
			carveTunnel(gmap, px, py, cx, cy, cfg.Rand)
			placement.Monsters = seedMonsters(room, cfg, placement.Monsters)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", gmap.Width),
		attribute.Int("dungeon.height", gmap.Height),
		attribute.Int("dungeon.room_count", len(gmap.Rooms)),
		attribute.Int("dungeon.monster_count", len(placement.Monsters)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return gmap, placement
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}
