package geo

import (
	"math/rand/v2"
	"testing"
)

// BenchmarkSearchOpenField routes corner to corner across an empty 200x200 grid.
func BenchmarkSearchOpenField(b *testing.B) {
	const size = 200
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = CellPassable
	}
	g, _ := NewGrid(cells, size, size)
	goal := Coord{size - 1, size - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_, _ = Search(Coord{0, 0}, goal, g)
	}
}

// BenchmarkSearchNoise routes across a 1-in-5 blocked 120x60 grid.
func BenchmarkSearchNoise(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 5))
	g := randomGrid(rng, 120, 60, 5)
	start, goal := Coord{0, 0}, Coord{119, 59}
	*g.At(start) = CellPassable
	*g.At(goal) = CellPassable

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_, _ = Search(start, goal, g)
	}
}

func BenchmarkDistance(b *testing.B) {
	a, c := Coord{3, 9}, Coord{117, 58}
	for range b.N {
		_ = Distance(a, c)
	}
}
