package life

import "termlife/internal/core"

// Topology selects which cells count as neighbours. The grid does not wrap:
// cells outside its bounds never count.
type Topology uint8

const (
	// TopologyMoore counts the 8 orthogonal and diagonal cells at distance 1.
	TopologyMoore Topology = iota
	// TopologyVonNeumann counts the 4 cells at distance exactly 2 along the
	// cardinal axes. This is not the classic radius-1 Von Neumann
	// neighbourhood; the name is kept for the variant it drives.
	TopologyVonNeumann
)

type offset struct{ dx, dy int }

var neighborhoods = map[Topology][]offset{
	TopologyMoore: {
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	},
	TopologyVonNeumann: {
		{0, -2},
		{-2, 0}, {2, 0},
		{0, 2},
	},
}

// String names the topology.
func (t Topology) String() string {
	switch t {
	case TopologyMoore:
		return "moore"
	case TopologyVonNeumann:
		return "vonneumann"
	default:
		return "unknown"
	}
}

// CountNeighbors returns the number of live in-bounds neighbours of (x, y).
func CountNeighbors(g *core.Grid, x, y int, t Topology) int {
	n := 0
	for _, o := range neighborhoods[t] {
		nx, ny := x+o.dx, y+o.dy
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.At(nx, ny) {
			n++
		}
	}
	return n
}
