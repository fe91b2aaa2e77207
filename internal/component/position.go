package component

import "math"

// Position is an entity's cell on the map.
type Position struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
