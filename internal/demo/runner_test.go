package demo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/mapgen"
	"github.com/udisondev/gridpath/internal/testutil"
)

func testConfig() config.Demo {
	cfg := config.DefaultDemo()
	cfg.Iterations = 20
	cfg.Delay = 0
	return cfg
}

func TestRunCounts(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"noise", "noise"},
		{"maze", "maze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Layout = tt.layout
			require.NoError(t, cfg.Validate())

			mock := testutil.NewMockRenderer()
			r := NewRunner(cfg, NewRNG(7), mock)
			require.NoError(t, r.Run(testutil.ContextWithTimeout(t, 10*time.Second)))

			st := r.Stats()
			assert.Equal(t, cfg.Iterations, st.Rounds)
			assert.Equal(t, st.Rounds, st.Routed+st.Unroutable)
			assert.Len(t, mock.Frames(), cfg.Iterations)
			assert.Equal(t, cfg.Iterations+1, mock.Clears())
			if tt.layout == "maze" {
				assert.Zero(t, st.Unroutable, "maze endpoints are always connected")
			}
		})
	}
}

func TestRunFramesShape(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 5
	mock := testutil.NewMockRenderer()
	r := NewRunner(cfg, NewRNG(3), mock)
	require.NoError(t, r.Run(context.Background()))

	routed := 0
	for _, f := range mock.Frames() {
		rows := strings.Split(strings.TrimSuffix(f, "\n"), "\n")
		require.Len(t, rows, cfg.Height)
		for _, row := range rows {
			assert.Len(t, row, cfg.Width)
		}
		if strings.Contains(f, "#") {
			routed++
		}
	}
	assert.Equal(t, r.Stats().Routed, routed)
}

func TestRunClearsBeforeFirstFrame(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 2
	mock := testutil.NewMockRenderer()

	require.NoError(t, NewRunner(cfg, NewRNG(9), mock).Run(context.Background()))
	assert.Equal(t, []string{"clear", "render", "clear", "render", "clear"}, mock.Calls())
}

func TestRunDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 5

	a, b := testutil.NewMockRenderer(), testutil.NewMockRenderer()
	require.NoError(t, NewRunner(cfg, NewRNG(42), a).Run(context.Background()))
	require.NoError(t, NewRunner(cfg, NewRNG(42), b).Run(context.Background()))

	assert.Equal(t, a.Frames(), b.Frames())
}

func TestRunRenderError(t *testing.T) {
	mock := testutil.NewMockRenderer()
	mock.RenderErr = testutil.ErrSimulated

	r := NewRunner(testConfig(), NewRNG(1), mock)
	err := r.Run(context.Background())

	require.ErrorIs(t, err, testutil.ErrSimulated)
	assert.Equal(t, 1, r.Stats().Rounds)
	assert.Equal(t, 1, mock.Clears(), "only the initial clear")
}

func TestRunCancelledDuringDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 0
	cfg.Delay = time.Hour

	mock := testutil.NewMockRenderer()
	r := NewRunner(cfg, NewRNG(5), mock)
	ctx, cancel := testutil.ContextWithCancel(t)

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return len(mock.Frames()) == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, mock.Clears(), "only the initial clear")
}

func TestRunAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := testutil.NewMockRenderer()
	r := NewRunner(testConfig(), NewRNG(1), mock)

	assert.NoError(t, r.Run(ctx))
	assert.Empty(t, mock.Frames())
}

func TestRunInvalidLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "hex"

	err := NewRunner(cfg, NewRNG(1), testutil.NewMockRenderer()).Run(context.Background())
	assert.ErrorIs(t, err, mapgen.ErrUnknownLayout)
}
