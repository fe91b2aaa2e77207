package system

import (
	"math/rand"
	"testing"

	"delve/internal/component"
	"delve/internal/ecs"
	"delve/internal/gamemap"
)

func TestMoveByOpenFloor(t *testing.T) {
	gmap := openMap(10, 10)
	w := ecs.NewWorld()
	id := w.Spawn(ecs.Entity{Pos: component.Position{X: 5, Y: 5}, Blocks: true})

	if !MoveBy(w, gmap, id, 1, 0) {
		t.Fatal("move onto open floor should succeed")
	}
	if p := w.Get(id).Pos; p.X != 6 || p.Y != 5 {
		t.Errorf("position = (%d,%d); want (6,5)", p.X, p.Y)
	}
}

func TestMoveByBlocked(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(*gamemap.GameMap, *ecs.World)
		dx, dy int
	}{
		{"wall", func(g *gamemap.GameMap, _ *ecs.World) { g.Set(6, 5, gamemap.MakeWall()) }, 1, 0},
		{"blocking entity", func(_ *gamemap.GameMap, w *ecs.World) {
			w.Spawn(ecs.Entity{Pos: component.Position{X: 5, Y: 4}, Blocks: true})
		}, 0, -1},
		{"off the map", func(*gamemap.GameMap, *ecs.World) {}, -6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := openMap(10, 10)
			w := ecs.NewWorld()
			id := w.Spawn(ecs.Entity{Pos: component.Position{X: 5, Y: 5}, Blocks: true})
			tc.setup(gmap, w)

			if MoveBy(w, gmap, id, tc.dx, tc.dy) {
				t.Error("blocked move reported success")
			}
			if p := w.Get(id).Pos; p.X != 5 || p.Y != 5 {
				t.Errorf("position changed to (%d,%d)", p.X, p.Y)
			}
		})
	}
}

func TestMoveByOntoCorpse(t *testing.T) {
	gmap := openMap(10, 10)
	w := ecs.NewWorld()
	id := w.Spawn(ecs.Entity{Pos: component.Position{X: 5, Y: 5}, Blocks: true})
	w.Spawn(ecs.Entity{Pos: component.Position{X: 6, Y: 5}, Name: "corpse of orc"})
	if !MoveBy(w, gmap, id, 1, 0) {
		t.Error("corpses must not block movement")
	}
}

// Random walks on a cluttered map must never end on a blocked cell.
func TestMoveByNeverEntersBlockedCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gmap := openMap(20, 20)
	for range 60 {
		gmap.Set(1+rng.Intn(18), 1+rng.Intn(18), gamemap.MakeWall())
	}
	gmap.Set(10, 10, gamemap.MakeFloor())
	w := ecs.NewWorld()
	walker := w.Spawn(ecs.Entity{Pos: component.Position{X: 10, Y: 10}, Blocks: true})
	for range 5 {
		x, y := 1+rng.Intn(18), 1+rng.Intn(18)
		if !gmap.IsBlocked(x, y) && (x != 10 || y != 10) {
			w.Spawn(ecs.Entity{Pos: component.Position{X: x, Y: y}, Blocks: true})
		}
	}

	for i := range 2000 {
		dx, dy := rng.Intn(3)-1, rng.Intn(3)-1
		before := w.Get(walker).Pos
		target := component.Position{X: before.X + dx, Y: before.Y + dy}
		blocked := (dx != 0 || dy != 0) && IsBlocked(gmap, w, target.X, target.Y)
		moved := MoveBy(w, gmap, walker, dx, dy)
		if blocked && moved {
			t.Fatalf("step %d: moved into blocked cell (%d,%d)", i, target.X, target.Y)
		}
		if gmap.IsBlocked(w.Get(walker).Pos.X, w.Get(walker).Pos.Y) {
			t.Fatalf("step %d: walker stands on a wall", i)
		}
	}
}

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		name     string
		from, to component.Position
		want     component.Position
	}{
		{"east", component.Position{X: 2, Y: 5}, component.Position{X: 8, Y: 5}, component.Position{X: 3, Y: 5}},
		{"north", component.Position{X: 5, Y: 8}, component.Position{X: 5, Y: 2}, component.Position{X: 5, Y: 7}},
		{"diagonal", component.Position{X: 2, Y: 2}, component.Position{X: 6, Y: 6}, component.Position{X: 3, Y: 3}},
		// (6,2)/6.32 rounds to (1,0).
		{"shallow angle", component.Position{X: 2, Y: 2}, component.Position{X: 8, Y: 4}, component.Position{X: 3, Y: 2}},
		{"same cell", component.Position{X: 4, Y: 4}, component.Position{X: 4, Y: 4}, component.Position{X: 4, Y: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := openMap(10, 10)
			w := ecs.NewWorld()
			id := w.Spawn(ecs.Entity{Pos: tc.from, Blocks: true})
			MoveTowards(w, gmap, id, tc.to.X, tc.to.Y)
			if got := w.Get(id).Pos; got != tc.want {
				t.Errorf("position = %+v; want %+v", got, tc.want)
			}
		})
	}
}

func TestMoveTowardsBlockedStepIsLost(t *testing.T) {
	gmap := openMap(10, 10)
	gmap.Set(3, 5, gamemap.MakeWall())
	w := ecs.NewWorld()
	id := w.Spawn(ecs.Entity{Pos: component.Position{X: 2, Y: 5}, Blocks: true})
	if MoveTowards(w, gmap, id, 8, 5) {
		t.Error("step into a wall should fail")
	}
	if p := w.Get(id).Pos; p.X != 2 || p.Y != 5 {
		t.Errorf("position = (%d,%d); want unchanged", p.X, p.Y)
	}
}
