// Package render draws routing grids. Text writes plain rows to any
// io.Writer; Screen drives a terminal through tcell.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/udisondev/gridpath/internal/geo"
)

var (
	// ErrUnknownRenderer indicates an unsupported renderer name.
	ErrUnknownRenderer = errors.New("render: unknown renderer")
	// ErrQuit is returned by Interactive.WaitQuit when the user asks to leave.
	ErrQuit = errors.New("render: quit requested")
	// ErrScreenTooSmall is returned when a grid does not fit the terminal.
	ErrScreenTooSmall = errors.New("render: grid larger than screen")
)

// Renderer shows one grid at a time.
type Renderer interface {
	Render(grid *geo.Grid[geo.Cell]) error
	Clear() error
	Close() error
}

// Interactive is implemented by renderers that own an input device.
// WaitQuit blocks until the user asks to quit (ErrQuit) or ctx is done (nil).
type Interactive interface {
	WaitQuit(ctx context.Context) error
}

// New returns the renderer registered under kind.
// out is used by the text renderer only.
func New(kind string, out io.Writer) (Renderer, error) {
	switch kind {
	case "text":
		return NewText(out), nil
	case "screen":
		return NewScreen()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, kind)
	}
}
