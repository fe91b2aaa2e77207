package system

import (
	"testing"

	"delve/internal/component"
	"delve/internal/ecs"
	"delve/internal/gamemap"
)

func TestIsBlockedTruthTable(t *testing.T) {
	cases := []struct {
		name   string
		wall   bool
		entity bool
		blocks bool
		want   bool
	}{
		{"open floor", false, false, false, false},
		{"wall", true, false, false, true},
		{"blocking entity", false, true, true, true},
		{"non-blocking entity", false, true, false, false},
		{"wall and blocking entity", true, true, true, true},
		{"wall and corpse", true, true, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := openMap(5, 5)
			if tc.wall {
				gmap.Set(2, 2, gamemap.MakeWall())
			}
			w := ecs.NewWorld()
			if tc.entity {
				w.Spawn(ecs.Entity{Pos: component.Position{X: 2, Y: 2}, Blocks: tc.blocks})
			}
			if got := IsBlocked(gmap, w, 2, 2); got != tc.want {
				t.Errorf("IsBlocked = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestIsBlockedOnlyChecksTargetCell(t *testing.T) {
	gmap := openMap(5, 5)
	w := ecs.NewWorld()
	w.Spawn(ecs.Entity{Pos: component.Position{X: 1, Y: 1}, Blocks: true})
	if IsBlocked(gmap, w, 2, 1) {
		t.Error("neighbouring blocker must not block (2,1)")
	}
}
