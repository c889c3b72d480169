package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Demo holds all configuration for the gridpath demo loop.
type Demo struct {
	// Grid
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Layout       string  `yaml:"layout"`         // noise | maze
	BlockedOneIn int     `yaml:"blocked_one_in"` // noise: one blocked cell in N
	Braiding     float64 `yaml:"braiding"`       // maze: 0.0 perfect .. 1.0 no dead ends
	Start        Point   `yaml:"start"`

	// Loop
	Iterations int           `yaml:"iterations"` // 0 = until interrupted
	Delay      time.Duration `yaml:"delay"`      // pause between frames
	Seed       uint64        `yaml:"seed"`       // 0 = time based

	// Output
	Renderer string `yaml:"renderer"` // text | screen
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty = stderr, or nowhere for screen
}

// Point is a grid coordinate in config files.
type Point struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

// DefaultDemo returns Demo config matching the classic 18x9 console demo.
func DefaultDemo() Demo {
	return Demo{
		Width:        18,
		Height:       9,
		Layout:       "noise",
		BlockedOneIn: 5,
		Braiding:     0.3,
		Iterations:   100,
		Delay:        5 * time.Second,
		Renderer:     "text",
		LogLevel:     "info",
	}
}

// LoadDemo loads demo config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDemo(path string) (Demo, error) {
	cfg := DefaultDemo()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that config fields are sensible.
func (d *Demo) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidSize
	}
	if uint64(d.Start.X) >= uint64(d.Width) || uint64(d.Start.Y) >= uint64(d.Height) {
		return ErrStartOutOfBounds
	}
	switch d.Layout {
	case "noise":
		if d.BlockedOneIn < 1 {
			return ErrInvalidBlockedRatio
		}
	case "maze":
		if d.Braiding < 0 || d.Braiding > 1 {
			return ErrInvalidBraiding
		}
	default:
		return ErrUnknownLayout
	}
	if d.Iterations < 0 {
		return ErrInvalidIterations
	}
	if d.Delay < 0 {
		return ErrInvalidDelay
	}
	switch d.Renderer {
	case "text", "screen":
	default:
		return ErrUnknownRenderer
	}
	if _, err := d.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (d *Demo) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(d.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, d.LogLevel)
	}
	return lvl, nil
}
