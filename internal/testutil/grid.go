package testutil

import (
	"testing"

	"github.com/udisondev/gridpath/internal/geo"
)

// ParseGrid builds a cell grid from text rows and fails the test on malformed input.
func ParseGrid(t testing.TB, rows ...string) *geo.Grid[geo.Cell] {
	t.Helper()

	g, err := geo.ParseGrid(rows...)
	if err != nil {
		t.Fatalf("parsing grid: %v", err)
	}
	return g
}
