// Package mapgen builds randomized routing grids and picks route
// endpoints. All randomness comes from the *rand.Rand passed in, so a
// fixed seed reproduces the same sequence of scenarios.
package mapgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/gridpath/internal/geo"
)

// Layout names a grid generation strategy.
type Layout string

// Supported layouts.
const (
	LayoutNoise Layout = "noise"
	LayoutMaze  Layout = "maze"
)

// Options configure Generate.
type Options struct {
	Layout       Layout
	Width        int
	Height       int
	BlockedOneIn int     // noise only; 0 means DefaultBlockedOneIn
	Braiding     float64 // maze only
	Start        geo.Coord
}

// Scenario is a grid with two walkable endpoints.
type Scenario struct {
	Grid  *geo.Grid[geo.Cell]
	Start geo.Coord
	Goal  geo.Coord
}

// Generate builds a grid with the configured layout, keeps opts.Start as
// the start and draws the goal uniformly from the grid. Both endpoints
// are forced walkable.
func Generate(rng *rand.Rand, opts Options) (Scenario, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return Scenario{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	var cells []geo.Cell
	switch opts.Layout {
	case LayoutNoise, "":
		oneIn := opts.BlockedOneIn
		if oneIn == 0 {
			oneIn = DefaultBlockedOneIn
		}
		if oneIn < 1 {
			return Scenario{}, fmt.Errorf("%w: blocked one in %d", ErrInvalidDensity, oneIn)
		}
		cells = Noise(rng, opts.Width, opts.Height, oneIn)
	case LayoutMaze:
		if opts.Braiding < 0 || opts.Braiding > 1 {
			return Scenario{}, fmt.Errorf("%w: braiding %v", ErrInvalidDensity, opts.Braiding)
		}
		cells = Maze(rng, opts.Width, opts.Height, opts.Braiding)
	default:
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownLayout, opts.Layout)
	}

	grid, err := geo.NewGrid(cells, opts.Width, opts.Height)
	if err != nil {
		return Scenario{}, fmt.Errorf("building grid: %w", err)
	}
	if !grid.InBounds(opts.Start) {
		return Scenario{}, fmt.Errorf("start %v: %w", opts.Start, geo.ErrOutOfBounds)
	}

	goal := grid.RandomCoord(rng)
	for _, c := range []geo.Coord{opts.Start, goal} {
		if opts.Layout == LayoutMaze {
			forceOpen(grid, c)
		} else {
			*grid.At(c) = geo.CellPassable
		}
	}

	return Scenario{Grid: grid, Start: opts.Start, Goal: goal}, nil
}

// forceOpen makes c walkable and, if it has no walkable neighbour,
// opens the first in-bounds one so a maze cell joins the corridor network.
func forceOpen(grid *geo.Grid[geo.Cell], c geo.Coord) {
	*grid.At(c) = geo.CellPassable

	var first *geo.Coord
	for _, n := range c.Neighbors() {
		v, ok := grid.Get(n)
		if !ok {
			continue
		}
		if v.Walkable() {
			return
		}
		if first == nil {
			first = &n
		}
	}
	if first != nil {
		*grid.At(*first) = geo.CellPassable
	}
}
