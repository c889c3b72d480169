package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	cameFrom := map[Coord]Coord{
		{1, 0}: {0, 0},
		{2, 0}: {1, 0},
		{2, 1}: {2, 0},
		{5, 5}: {4, 5}, // unrelated branch
	}

	path, err := Reconstruct(cameFrom, Coord{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{2, 1}, {2, 0}, {1, 0}, {0, 0}}, path)
}

func TestReconstructNoPredecessor(t *testing.T) {
	path, err := Reconstruct(map[Coord]Coord{}, Coord{3, 3})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{3, 3}}, path)

	path, err = Reconstruct(nil, Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}}, path)
}

func TestReconstructSelfLoop(t *testing.T) {
	cameFrom := map[Coord]Coord{
		{2, 0}: {1, 0},
		{1, 0}: {1, 0},
	}

	path, err := Reconstruct(cameFrom, Coord{2, 0})
	assert.ErrorIs(t, err, ErrPredecessorLoop)
	assert.Nil(t, path)
}

func TestReconstructCycle(t *testing.T) {
	cameFrom := map[Coord]Coord{
		{0, 0}: {1, 0},
		{1, 0}: {1, 1},
		{1, 1}: {0, 0},
	}

	_, err := Reconstruct(cameFrom, Coord{1, 1})
	assert.ErrorIs(t, err, ErrPredecessorLoop)
}

func TestMarkPath(t *testing.T) {
	g := mustParse(t, "...", ".$.")
	path := []Coord{{2, 1}, {2, 0}, {1, 0}, {0, 0}, {9, 9}}

	marked := MarkPath(g, path)
	assert.Equal(t, 4, marked)
	assert.Equal(t, "###\n.$#\n", Format(g))
}
