package geo

import "errors"

var (
	// ErrGridSize indicates the tile count does not match width*height or a dimension is not positive.
	ErrGridSize = errors.New("geo: tile count must equal width*height with positive dimensions")
	// ErrNilGrid indicates a search was started without a grid.
	ErrNilGrid = errors.New("geo: grid is nil")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("geo: coordinate out of bounds")
	// ErrNoPath indicates the frontier was exhausted before reaching the goal.
	ErrNoPath = errors.New("geo: no path found")
	// ErrPredecessorLoop indicates the predecessor map contains a cycle.
	ErrPredecessorLoop = errors.New("geo: predecessor map contains a loop")
)
