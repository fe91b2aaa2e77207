package fov

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

func (m *Map) shadowcast(vis []bool, ox, oy, radius int, lightWalls bool) {
	s := shadowScan{m: m, vis: vis, cx: ox, cy: oy, radius: radius, lightWalls: lightWalls}
	for _, o := range octants {
		s.castLight(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
}

type shadowScan struct {
	m          *Map
	vis        []bool
	cx, cy     int
	radius     int
	lightWalls bool
}

// castLight lights one octant row by row, recursing past each run of opaque
// cells with a narrowed slope window.
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
//   - dy = -j is fixed for the row; dx sweeps from -j to 0
func (s *shadowScan) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := s.radius * s.radius
	newStart := start

	for j := row; j <= s.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := s.cx + dx*xx + dy*xy
			wy := s.cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := !s.m.IsTransparent(wx, wy)
			if dx*dx+dy*dy <= radiusSq && s.m.inBounds(wx, wy) && (!opaque || s.lightWalls) {
				s.vis[wy*s.m.width+wx] = true
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < s.radius {
				blocked = true
				s.castLight(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
