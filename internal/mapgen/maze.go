package mapgen

import (
	"math/rand/v2"

	"github.com/udisondev/gridpath/internal/geo"
)

// Rooms sit on even (x,y); the cells between two rooms are walls that
// carving may open. Odd/odd cells always stay blocked.
var (
	jumps = [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	steps = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Maze returns width*height cells carved by a recursive backtracker
// starting at (0,0), so every room is reachable from every other.
// braiding in [0,1] is the chance that a dead end gets an extra
// opening, which adds cycles.
func Maze(rng *rand.Rand, width, height int, braiding float64) []geo.Cell {
	m := &lattice{cells: make([]geo.Cell, width*height), w: width, h: height}
	for i := range m.cells {
		m.cells[i] = geo.CellBlocked
	}

	m.carve(rng)
	if braiding > 0 {
		m.braid(rng, braiding)
	}
	return m.cells
}

type lattice struct {
	cells []geo.Cell
	w, h  int
}

func (m *lattice) in(x, y int) bool { return x >= 0 && x < m.w && y >= 0 && y < m.h }

func (m *lattice) open(x, y int) bool { return m.in(x, y) && m.cells[y*m.w+x] == geo.CellPassable }

func (m *lattice) set(x, y int, c geo.Cell) { m.cells[y*m.w+x] = c }

func (m *lattice) carve(rng *rand.Rand) {
	type point struct{ x, y int }

	stack := []point{{0, 0}}
	m.set(0, 0, geo.CellPassable)

	candidates := make([]int, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]
		for i, d := range jumps {
			nx, ny := curr.x+d[0], curr.y+d[1]
			if m.in(nx, ny) && !m.open(nx, ny) {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := jumps[candidates[rng.IntN(len(candidates))]]
		m.set(curr.x+d[0]/2, curr.y+d[1]/2, geo.CellPassable)
		next := point{curr.x + d[0], curr.y + d[1]}
		m.set(next.x, next.y, geo.CellPassable)
		stack = append(stack, next)
	}
}

// braid opens one wall of a dead-end room with the given probability,
// skipping walls whose removal would create a 2x2 open plaza.
func (m *lattice) braid(rng *rand.Rand, probability float64) {
	for y := 0; y < m.h; y += 2 {
		for x := 0; x < m.w; x += 2 {
			exits := 0
			for _, d := range steps {
				if m.open(x+d[0], y+d[1]) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			var walls [][2]int
			for _, d := range jumps {
				wx, wy := x+d[0]/2, y+d[1]/2
				if m.open(x+d[0], y+d[1]) && !m.open(wx, wy) && !m.formsPlaza(wx, wy) {
					walls = append(walls, [2]int{wx, wy})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.IntN(len(walls))]
				m.set(w[0], w[1], geo.CellPassable)
			}
		}
	}
}

// formsPlaza reports whether opening (x,y) completes a 2x2 open square.
func (m *lattice) formsPlaza(x, y int) bool {
	for _, q := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		ox, oy := x+q[0], y+q[1]
		n := 0
		for _, c := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			cx, cy := ox+c[0], oy+c[1]
			if (cx == x && cy == y) || m.open(cx, cy) {
				n++
			}
		}
		if n == 4 {
			return true
		}
	}
	return false
}
