package geo

import (
	"fmt"
	"math"
)

// Coord is a cell position. Both axes are unsigned, so a coordinate
// can never be negative.
type Coord struct {
	X, Y uint32
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the straight-line distance between a and b,
// truncated toward zero. Truncation (not rounding) decides frontier
// ordering, so it must not change.
func Distance(a, b Coord) int {
	dx := float64(absDiff(a.X, b.X))
	dy := float64(absDiff(a.Y, b.Y))
	return int(math.Sqrt(dx*dx + dy*dy))
}

// Neighbors returns the axis-aligned neighbours of c in the order
// +x, -x, +y, -y. A direction that would leave the uint32 range is omitted.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, 4)
	if c.X < math.MaxUint32 {
		out = append(out, Coord{X: c.X + 1, Y: c.Y})
	}
	if c.X > 0 {
		out = append(out, Coord{X: c.X - 1, Y: c.Y})
	}
	if c.Y < math.MaxUint32 {
		out = append(out, Coord{X: c.X, Y: c.Y + 1})
	}
	if c.Y > 0 {
		out = append(out, Coord{X: c.X, Y: c.Y - 1})
	}
	return out
}

// IsNeighbor reports whether o is one axis step away from c.
func (c Coord) IsNeighbor(o Coord) bool {
	dx, dy := absDiff(c.X, o.X), absDiff(c.Y, o.Y)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
