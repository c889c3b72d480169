package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/demo"
	"github.com/udisondev/gridpath/internal/render"
)

const ConfigPath = "config/gridpath.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("GRIDPATH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadDemo(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	logOut, closeLog, err := logOutput(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// Restored after the renderer closes so a fatal error still reaches stderr.
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Info("config loaded",
		"path", cfgPath,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"layout", cfg.Layout,
		"iterations", cfg.Iterations,
		"delay", cfg.Delay,
		"renderer", cfg.Renderer)

	renderer, err := render.New(cfg.Renderer, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Close()

	runner := demo.NewRunner(cfg, demo.NewRNG(cfg.Seed), renderer)

	g, gctx := errgroup.WithContext(ctx)
	gctx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		// Stop the event pump once the loop is done.
		defer stop()
		if err := runner.Run(gctx); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		return nil
	})

	if ui, ok := renderer.(render.Interactive); ok {
		g.Go(func() error {
			err := ui.WaitQuit(gctx)
			if errors.Is(err, render.ErrQuit) {
				slog.Info("quit requested")
				stop()
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("demo error: %w", err)
	}

	st := runner.Stats()
	slog.Info("demo finished", "rounds", st.Rounds, "routed", st.Routed, "unroutable", st.Unroutable)
	return nil
}
