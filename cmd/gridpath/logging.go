package main

import (
	"fmt"
	"io"
	"os"

	"github.com/udisondev/gridpath/internal/config"
)

// logOutput picks the slog destination. The screen renderer owns the
// terminal, so without a log file its logs are discarded.
// The returned close func is never nil.
func logOutput(cfg config.Demo, stderr io.Writer) (io.Writer, func() error, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, f.Close, nil
	}
	if cfg.Renderer == "screen" {
		return io.Discard, func() error { return nil }, nil
	}
	return stderr, func() error { return nil }, nil
}
