package mapgen

import (
	"math/rand/v2"

	"github.com/udisondev/gridpath/internal/geo"
)

// DefaultBlockedOneIn blocks one cell in five on average.
const DefaultBlockedOneIn = 5

// Noise returns width*height independent cells, each blocked with
// probability 1/blockedOneIn. blockedOneIn must be at least 1.
func Noise(rng *rand.Rand, width, height, blockedOneIn int) []geo.Cell {
	cells := make([]geo.Cell, width*height)
	for i := range cells {
		if rng.IntN(blockedOneIn) == blockedOneIn-1 {
			cells[i] = geo.CellBlocked
		} else {
			cells[i] = geo.CellPassable
		}
	}
	return cells
}
