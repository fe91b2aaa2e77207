// Package fov computes which cells are visible from an origin.
package fov

import (
	"fmt"
	"strings"

	"delve/internal/gamemap"
)

// Algorithm selects how visibility is computed.
type Algorithm uint8

const (
	// AlgorithmBasic casts a Bresenham ray to every cell on the edge of the
	// radius box and stops each ray at the first opaque cell.
	AlgorithmBasic Algorithm = iota
	// AlgorithmShadowcast runs recursive shadowcasting over eight octants.
	AlgorithmShadowcast
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBasic:
		return "basic"
	case AlgorithmShadowcast:
		return "shadow"
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm maps a config name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "basic", "":
		return AlgorithmBasic, nil
	case "shadow", "shadowcast":
		return AlgorithmShadowcast, nil
	}
	return 0, fmt.Errorf("fov: unknown algorithm %q", name)
}

// Map is a snapshot of cell transparency plus the last computed visible set.
// Terrain never changes after generation, so a Map is built once per dungeon.
type Map struct {
	width, height int
	transparent   []bool
	visible       []bool
	cache         *Cache
}

// New creates an opaque Map of the given size.
func New(width, height int) *Map {
	n := width * height
	return &Map{
		width:       width,
		height:      height,
		transparent: make([]bool, n),
		visible:     make([]bool, n),
	}
}

// FromGameMap copies transparency from gmap.
func FromGameMap(gmap *gamemap.GameMap) *Map {
	m := New(gmap.Width, gmap.Height)
	for i, t := range gmap.Tiles {
		m.transparent[i] = !t.BlocksSight
	}
	return m
}

// WithCache attaches a cache of computed visible sets. The cache is only valid
// for this Map's terrain.
func (m *Map) WithCache(c *Cache) *Map {
	m.cache = c
	return m
}

// Close releases the attached cache, if any.
func (m *Map) Close() {
	if m.cache != nil {
		m.cache.Close()
		m.cache = nil
	}
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsTransparent reports whether light passes (x, y). False out of bounds.
func (m *Map) IsTransparent(x, y int) bool {
	return m.inBounds(x, y) && m.transparent[y*m.width+x]
}

// InFov reports whether (x, y) was visible in the last Compute.
func (m *Map) InFov(x, y int) bool {
	return m.inBounds(x, y) && m.visible[y*m.width+x]
}

// VisibleCount returns the number of cells in the current visible set.
func (m *Map) VisibleCount() int {
	n := 0
	for _, v := range m.visible {
		if v {
			n++
		}
	}
	return n
}

// Compute replaces the visible set with the cells seen from (ox, oy).
// A radius of 0 means unlimited. With lightWalls set, the opaque cell that
// stops a line of sight is itself visible.
func (m *Map) Compute(ox, oy, radius int, lightWalls bool, algo Algorithm) {
	key := cacheKey(m.width, ox, oy, radius, lightWalls, algo)
	if m.cache != nil {
		if vis, ok := m.cache.Get(key); ok {
			m.visible = vis
			return
		}
	}

	vis := make([]bool, m.width*m.height)
	if m.inBounds(ox, oy) {
		if radius <= 0 {
			radius = max(m.width, m.height)
		}
		vis[oy*m.width+ox] = true
		switch algo {
		case AlgorithmShadowcast:
			m.shadowcast(vis, ox, oy, radius, lightWalls)
		default:
			m.raycast(vis, ox, oy, radius, lightWalls)
		}
	}
	m.visible = vis

	if m.cache != nil {
		m.cache.Set(key, vis)
	}
}
