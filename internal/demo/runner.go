// Package demo runs the generate → route → draw loop.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/geo"
	"github.com/udisondev/gridpath/internal/mapgen"
	"github.com/udisondev/gridpath/internal/render"
)

// Stats counts rounds by outcome.
type Stats struct {
	Rounds     int
	Routed     int
	Unroutable int
}

// Runner draws a fresh scenario every round.
// Not safe for concurrent use.
type Runner struct {
	cfg      config.Demo
	rng      *rand.Rand
	renderer render.Renderer
	stats    Stats
}

// NewRNG returns a PCG source for seed; seed 0 draws one from the clock.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRunner creates a Runner. cfg is expected to be validated.
func NewRunner(cfg config.Demo, rng *rand.Rand, r render.Renderer) *Runner {
	return &Runner{cfg: cfg, rng: rng, renderer: r}
}

// Stats returns the counters accumulated so far.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Run clears the display, then plays cfg.Iterations rounds (forever when
// 0). Each round generates a grid, routes it, overlays the path, renders,
// waits cfg.Delay and clears.
// An unroutable grid is rendered without overlay. Cancelling ctx ends the
// run with a nil error.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.renderer.Clear(); err != nil {
		return fmt.Errorf("initial clear: %w", err)
	}
	for i := 0; r.cfg.Iterations == 0 || i < r.cfg.Iterations; i++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := r.round(i); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		if !wait(ctx, r.cfg.Delay) {
			return nil
		}
		if err := r.renderer.Clear(); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	return nil
}

func (r *Runner) round(i int) error {
	sc, err := mapgen.Generate(r.rng, mapgen.Options{
		Layout:       mapgen.Layout(r.cfg.Layout),
		Width:        r.cfg.Width,
		Height:       r.cfg.Height,
		BlockedOneIn: r.cfg.BlockedOneIn,
		Braiding:     r.cfg.Braiding,
		Start:        geo.Coord{X: r.cfg.Start.X, Y: r.cfg.Start.Y},
	})
	if err != nil {
		return fmt.Errorf("generating grid: %w", err)
	}
	r.stats.Rounds++
	slog.Debug("scenario generated", "round", i, "start", sc.Start, "goal", sc.Goal,
		"width", sc.Grid.Width(), "height", sc.Grid.Height())

	res, err := geo.Search(sc.Start, sc.Goal, sc.Grid)
	switch {
	case err == nil:
		r.stats.Routed++
		geo.MarkPath(sc.Grid, res.Path)
		slog.Info("route found", "round", i, "length", len(res.Path), "expanded", res.Expanded)
	case errors.Is(err, geo.ErrNoPath):
		r.stats.Unroutable++
		slog.Warn("no route", "round", i, "start", sc.Start, "goal", sc.Goal, "expanded", res.Expanded)
	default:
		return fmt.Errorf("searching route: %w", err)
	}

	if err := r.renderer.Render(sc.Grid); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// wait sleeps for d and reports false if ctx ended first.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
