package geo

import (
	"container/heap"
	"fmt"
)

// Result is the outcome of a successful Search.
type Result struct {
	// Path runs from goal back to start, both inclusive.
	Path []Coord
	// Expanded is the number of coordinates moved to the closed set.
	Expanded int
}

// PathBetween returns the route from start to goal in goal-to-start order.
// See Search.
func PathBetween(start, goal Coord, grid *Grid[Cell]) ([]Coord, error) {
	res, err := Search(start, goal, grid)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs greedy best-first search from start to goal over the
// walkable cells of grid. The frontier member with the smallest
// Distance to goal is always expanded next; equal distances go to the
// coordinate queued first. Accumulated path length is never considered,
// so the route is not guaranteed to be the shortest.
//
// start is seeded without a walkability check; every other coordinate
// on the route, goal included, must be CellPassable. The grid is not
// modified.
//
// Returns ErrNilGrid, ErrOutOfBounds for endpoints outside the grid,
// ErrNoPath when the frontier empties, or ErrPredecessorLoop if
// reconstruction detects a cycle.
// Terminates after at most width*height expansions.
func Search(start, goal Coord, grid *Grid[Cell]) (Result, error) {
	if grid == nil {
		return Result{}, ErrNilGrid
	}
	if !grid.InBounds(start) || !grid.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: route %v -> %v in %dx%d grid",
			ErrOutOfBounds, start, goal, grid.Width(), grid.Height())
	}

	s := newSearch(goal)
	s.push(start)

	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(frontierItem).coord
		delete(s.inOpen, current)

		if _, done := s.closed[current]; done {
			continue
		}
		s.closed[current] = struct{}{}

		if current == goal {
			path, err := Reconstruct(s.cameFrom, current)
			if err != nil {
				return Result{Expanded: len(s.closed)}, err
			}
			return Result{Path: path, Expanded: len(s.closed)}, nil
		}

		s.expand(current, grid)
	}

	return Result{Expanded: len(s.closed)}, fmt.Errorf("%w: %v -> %v after %d expansions",
		ErrNoPath, start, goal, len(s.closed))
}

// search is the per-call frontier state.
type search struct {
	goal     Coord
	open     frontier
	inOpen   map[Coord]struct{}
	closed   map[Coord]struct{}
	cameFrom map[Coord]Coord
	seq      uint64
}

func newSearch(goal Coord) *search {
	return &search{
		goal:     goal,
		inOpen:   make(map[Coord]struct{}, 64),
		closed:   make(map[Coord]struct{}, 256),
		cameFrom: make(map[Coord]Coord, 256),
	}
}

// push queues c unless it is already waiting in the frontier.
func (s *search) push(c Coord) {
	if _, queued := s.inOpen[c]; queued {
		return
	}
	heap.Push(&s.open, frontierItem{coord: c, dist: Distance(c, s.goal), seq: s.seq})
	s.seq++
	s.inOpen[c] = struct{}{}
}

// expand queues the walkable, unclosed neighbours of current.
// The first coordinate to discover a neighbour stays its predecessor.
func (s *search) expand(current Coord, grid *Grid[Cell]) {
	for _, n := range current.Neighbors() {
		if _, done := s.closed[n]; done {
			continue
		}
		cell, ok := grid.Get(n)
		if !ok || !cell.Walkable() {
			continue
		}
		if _, seen := s.cameFrom[n]; !seen {
			s.cameFrom[n] = current
		}
		s.push(n)
	}
}

// frontierItem is an open-set entry ordered by (dist, seq).
type frontierItem struct {
	coord Coord
	dist  int
	seq   uint64
}

// frontier implements container/heap as a min-heap over frontierItem.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
