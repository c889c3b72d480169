package geo

import "fmt"

// Reconstruct walks cameFrom backward from goal and returns the visited
// coordinates in goal-to-start order. The walk stops at the first
// coordinate with no predecessor. Callers that need travel order
// must reverse the result (slices.Reverse).
//
// A coordinate that is its own predecessor, or a walk longer than the
// map itself, yields ErrPredecessorLoop.
func Reconstruct(cameFrom map[Coord]Coord, goal Coord) ([]Coord, error) {
	path := []Coord{goal}
	current := goal
	for {
		prev, ok := cameFrom[current]
		if !ok {
			return path, nil
		}
		if prev == current {
			return nil, fmt.Errorf("%w: %v is its own predecessor", ErrPredecessorLoop, current)
		}
		if len(path) > len(cameFrom) {
			return nil, fmt.Errorf("%w: walk from %v exceeds %d links", ErrPredecessorLoop, goal, len(cameFrom))
		}
		path = append(path, prev)
		current = prev
	}
}

// MarkPath overlays CellPath on every in-bounds coordinate of path
// and returns how many cells were marked.
func MarkPath(grid *Grid[Cell], path []Coord) int {
	marked := 0
	for _, c := range path {
		if !grid.InBounds(c) {
			continue
		}
		*grid.At(c) = CellPath
		marked++
	}
	return marked
}
