// Package geo holds the routing core: a fixed-size grid addressed by
// unsigned coordinates, the truncated straight-line heuristic, greedy
// best-first search over passable cells and predecessor-walk path
// reconstruction.
//
// The package performs no I/O, does not log and takes no dependency on
// a global random source.
package geo

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Grid is a width×height block of cells stored row-major.
// Cell (x,y) lives at index y*width+x; that is the only addressing rule.
// A Grid is never resized after construction.
type Grid[T any] struct {
	tiles  []T
	width  int
	height int
}

// NewGrid builds a grid over a copy of values.
// Returns ErrGridSize unless width and height are positive and
// len(values) == width*height.
func NewGrid[T any](values []T, width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 || len(values) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrGridSize, len(values), width, height)
	}
	tiles := make([]T, len(values))
	copy(tiles, values)
	return &Grid[T]{tiles: tiles, width: width, height: height}, nil
}

// ParseGrid builds a cell grid from text rows, one byte per cell.
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid[Cell], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrGridSize)
	}
	width := len(rows[0])
	cells := make([]Cell, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridSize, y, len(row), width)
		}
		for i := 0; i < len(row); i++ {
			cells = append(cells, Cell(row[i]))
		}
	}
	return NewGrid(cells, width, len(rows))
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.tiles) }

// InBounds reports whether c addresses a cell of g.
func (g *Grid[T]) InBounds(c Coord) bool {
	return uint64(c.X) < uint64(g.width) && uint64(c.Y) < uint64(g.height)
}

// Get returns the value at c. ok is false when c is out of bounds.
func (g *Grid[T]) Get(c Coord) (v T, ok bool) {
	if !g.InBounds(c) {
		return v, false
	}
	return g.tiles[g.index(c)], true
}

// At returns a pointer to the cell at c for in-place mutation.
// The caller must ensure g.InBounds(c); At panics otherwise.
func (g *Grid[T]) At(c Coord) *T {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("geo: At%v outside %dx%d grid", c, g.width, g.height))
	}
	return &g.tiles[g.index(c)]
}

// Set stores v at c. Returns ErrOutOfBounds when c is outside the grid.
func (g *Grid[T]) Set(c Coord, v T) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	g.tiles[g.index(c)] = v
	return nil
}

// Row returns a copy of row y. Panics if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	row := make([]T, g.width)
	copy(row, g.tiles[y*g.width:(y+1)*g.width])
	return row
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	tiles := make([]T, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid[T]{tiles: tiles, width: g.width, height: g.height}
}

// RandomCoord returns a uniformly chosen coordinate of g, drawing from rng.
func (g *Grid[T]) RandomCoord(rng *rand.Rand) Coord {
	return g.coord(rng.IntN(len(g.tiles)))
}

// RandomCell returns the value of a uniformly chosen cell, drawing from rng.
func (g *Grid[T]) RandomCell(rng *rand.Rand) T {
	return g.tiles[rng.IntN(len(g.tiles))]
}

// index maps c to its row-major offset.
func (g *Grid[T]) index(c Coord) int {
	return int(c.Y)*g.width + int(c.X)
}

// coord converts a row-major offset back to a coordinate.
func (g *Grid[T]) coord(idx int) Coord {
	return Coord{X: uint32(idx % g.width), Y: uint32(idx / g.width)}
}

// Format renders a cell grid as newline-terminated rows.
func Format(g *Grid[Cell]) string {
	var b strings.Builder
	b.Grow(g.Len() + g.height)
	for y := 0; y < g.height; y++ {
		for _, c := range g.tiles[y*g.width : (y+1)*g.width] {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
