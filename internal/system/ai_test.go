package system

import (
	"testing"

	"delve/internal/component"
	"delve/internal/ecs"
)

func TestReflexTurnIdleWhenNotVisible(t *testing.T) {
	gmap := openMap(20, 20)
	w := ecs.NewWorld()
	player := spawnFighter(w, "player", 2, 2, 30, 2, 5, component.PlayerDeath)
	orc := spawnMonster(w, 10, 10)

	if _, attacked := ReflexTurn(w, gmap, noneVisible{}, orc, player); attacked {
		t.Error("unseen monster must not attack")
	}
	if p := w.Get(orc).Pos; p.X != 10 || p.Y != 10 {
		t.Errorf("unseen monster moved to (%d,%d)", p.X, p.Y)
	}
}

func TestReflexTurnApproaches(t *testing.T) {
	gmap := openMap(20, 20)
	w := ecs.NewWorld()
	player := spawnFighter(w, "player", 2, 5, 30, 2, 5, component.PlayerDeath)
	orc := spawnMonster(w, 8, 5)

	ReflexTurn(w, gmap, allVisible{}, orc, player)
	if p := w.Get(orc).Pos; p.X != 7 || p.Y != 5 {
		t.Errorf("orc at (%d,%d); want (7,5)", p.X, p.Y)
	}
}

func TestReflexTurnAttacksWhenAdjacent(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"orthogonal", 3, 2},
		{"diagonal", 3, 3}, // distance 1.41 is below 2
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := openMap(20, 20)
			w := ecs.NewWorld()
			player := spawnFighter(w, "player", 2, 2, 30, 1, 5, component.PlayerDeath)
			orc := spawnMonster(w, tc.x, tc.y)

			res, attacked := ReflexTurn(w, gmap, allVisible{}, orc, player)
			if !attacked || res.Damage != 2 {
				t.Fatalf("attacked=%v result=%+v; want 2 damage", attacked, res)
			}
			if hp := w.Get(player).Fighter.HP; hp != 28 {
				t.Errorf("player hp = %d; want 28", hp)
			}
			if p := w.Get(orc).Pos; p.X != tc.x || p.Y != tc.y {
				t.Error("attacking monster must not move")
			}
		})
	}
}

func TestReflexTurnSparesDeadPlayer(t *testing.T) {
	gmap := openMap(20, 20)
	w := ecs.NewWorld()
	player := spawnFighter(w, "player", 2, 2, 30, 0, 5, component.PlayerDeath)
	orc := spawnMonster(w, 3, 2)
	w.Get(player).Fighter.HP = 0

	if _, attacked := ReflexTurn(w, gmap, allVisible{}, orc, player); attacked {
		t.Error("monster must not attack a player with no hp left")
	}
}

func TestReflexTurnBlockedByOtherMonster(t *testing.T) {
	gmap := openMap(20, 20)
	w := ecs.NewWorld()
	player := spawnFighter(w, "player", 2, 5, 30, 2, 5, component.PlayerDeath)
	spawnMonster(w, 5, 5)
	orc := spawnMonster(w, 6, 5)

	ReflexTurn(w, gmap, allVisible{}, orc, player)
	if p := w.Get(orc).Pos; p.X != 6 || p.Y != 5 {
		t.Errorf("orc moved through another monster to (%d,%d)", p.X, p.Y)
	}
}
