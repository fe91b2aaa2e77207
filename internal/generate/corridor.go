package generate

import "delve/internal/gamemap"

// carveTunnel digs an L-shaped tunnel from (x1,y1) to (x2,y2).
// One coin flip picks horizontal-then-vertical or vertical-then-horizontal.
func carveTunnel(gmap *gamemap.GameMap, x1, y1, x2, y2 int, r Rand) {
	if r.Intn(2) == 0 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

// carveH floors the row y from x1 to x2 inclusive.
func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		gmap.Set(x, y, gamemap.MakeFloor())
	}
}

// carveV floors the column x from y1 to y2 inclusive.
func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		gmap.Set(x, y, gamemap.MakeFloor())
	}
}

// carveRoom floors the interior of r, leaving its outer border as wall.
func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
