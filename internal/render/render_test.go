package render

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gridpath/internal/geo"
	"github.com/udisondev/gridpath/internal/testutil"
)

func TestNewUnknown(t *testing.T) {
	_, err := New("svg", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("text", &buf)
	require.NoError(t, err)

	g := testutil.ParseGrid(t, ".$.", "##.")
	require.NoError(t, r.Render(g))
	assert.Equal(t, ".$.\n##.\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Clear())
	assert.Equal(t, "\x1b[2J\x1b[H", buf.String())
	assert.NoError(t, r.Close())
}

func TestTextWriteError(t *testing.T) {
	r := NewText(testutil.FailingWriter{})
	g := testutil.ParseGrid(t, "..")

	assert.ErrorIs(t, r.Render(g), testutil.ErrSimulated)
	assert.ErrorIs(t, r.Clear(), testutil.ErrSimulated)
}

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim)
	require.NoError(t, err)
	sim.SetSize(10, 4)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

func TestScreenRender(t *testing.T) {
	s, sim := newSimScreen(t)
	g := testutil.ParseGrid(t, ".$#", "...")

	require.NoError(t, s.Render(g))

	cells, w, _ := sim.GetContents()
	runeAt := func(x, y int) rune {
		c := cells[y*w+x]
		require.NotEmpty(t, c.Runes)
		return c.Runes[0]
	}
	assert.Equal(t, '.', runeAt(0, 0))
	assert.Equal(t, '$', runeAt(1, 0))
	assert.Equal(t, '#', runeAt(2, 0))
	assert.Equal(t, '.', runeAt(2, 1))
	assert.Equal(t, cellStyles[geo.CellPath], cells[2].Style)

	require.NoError(t, s.Clear())
	cells, _, _ = sim.GetContents()
	assert.NotEqual(t, '$', firstRune(cells[1]))
}

func TestScreenRenderFit(t *testing.T) {
	s, _ := newSimScreen(t)

	tests := []struct {
		name string
		rows []string
		err  error
	}{
		{"exact fit", []string{"..........", "..........", "..........", ".........."}, nil},
		{"too wide", []string{"..........."}, ErrScreenTooSmall},
		{"too tall", []string{".", ".", ".", ".", "."}, ErrScreenTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Render(testutil.ParseGrid(t, tt.rows...))
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func firstRune(c tcell.SimCell) rune {
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestScreenWaitQuitKey(t *testing.T) {
	s, sim := newSimScreen(t)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.ErrorIs(t, s.WaitQuit(ctx), ErrQuit)
}

func TestScreenWaitQuitEscape(t *testing.T) {
	s, sim := newSimScreen(t)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	assert.ErrorIs(t, s.WaitQuit(ctx), ErrQuit)
}

func TestScreenWaitQuitCancelled(t *testing.T) {
	s, _ := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.WaitQuit(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitQuit did not return after cancel")
	}
}
