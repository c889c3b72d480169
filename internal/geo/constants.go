package geo

// Cell is the value stored in a routing grid.
// Only CellPassable is traversable; CellPath is an overlay for display.
type Cell byte

// Cell symbols.
const (
	CellPassable Cell = '.'
	CellBlocked  Cell = '$'
	CellPath     Cell = '#'
)

// Walkable reports whether the search may step onto c.
func (c Cell) Walkable() bool {
	return c == CellPassable
}

// String returns the display symbol.
func (c Cell) String() string {
	return string(rune(c))
}
