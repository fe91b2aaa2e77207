package fov

// raycast traces a line from the origin to every cell on the border of the
// radius box. Each ray lights transparent cells until it meets an opaque one.
func (m *Map) raycast(vis []bool, ox, oy, radius int, lightWalls bool) {
	minX, maxX := ox-radius, ox+radius
	minY, maxY := oy-radius, oy+radius
	r2 := radius * radius

	for x := minX; x <= maxX; x++ {
		m.castRay(vis, ox, oy, x, minY, r2, lightWalls)
		m.castRay(vis, ox, oy, x, maxY, r2, lightWalls)
	}
	for y := minY + 1; y < maxY; y++ {
		m.castRay(vis, ox, oy, minX, y, r2, lightWalls)
		m.castRay(vis, ox, oy, maxX, y, r2, lightWalls)
	}
}

// castRay walks a Bresenham line from (x0, y0) toward (x1, y1).
func (m *Map) castRay(vis []bool, x0, y0, x1, y1, r2 int, lightWalls bool) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0

	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if !m.inBounds(x, y) {
			return
		}
		ddx, ddy := x-x0, y-y0
		if ddx*ddx+ddy*ddy > r2 {
			return
		}
		i := y*m.width + x
		if !m.transparent[i] {
			if lightWalls {
				vis[i] = true
			}
			return
		}
		vis[i] = true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
