package render

import (
	"fmt"
	"io"

	"github.com/udisondev/gridpath/internal/geo"
)

// clearSeq erases the display and homes the cursor.
const clearSeq = "\x1b[2J\x1b[H"

// Text prints grids as rows of cell symbols.
type Text struct {
	out io.Writer
}

// NewText returns a Text renderer writing to out.
func NewText(out io.Writer) *Text {
	return &Text{out: out}
}

func (t *Text) Render(grid *geo.Grid[geo.Cell]) error {
	if _, err := io.WriteString(t.out, geo.Format(grid)); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	return nil
}

func (t *Text) Clear() error {
	if _, err := io.WriteString(t.out, clearSeq); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}

func (t *Text) Close() error { return nil }
