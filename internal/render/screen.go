package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/gridpath/internal/geo"
)

// cellStyles colours each symbol; unknown symbols use tcell.StyleDefault.
var cellStyles = map[geo.Cell]tcell.Style{
	geo.CellPassable: tcell.StyleDefault.Foreground(tcell.ColorGray),
	geo.CellBlocked:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	geo.CellPath:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
}

// Screen draws grids on a full-screen terminal.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens and initialises the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	s.HideCursor()
	return &Screen{screen: s}, nil
}

// Render draws grid from the top-left corner. A grid wider or taller than
// the terminal is not drawn at all; ErrScreenTooSmall is returned instead.
func (s *Screen) Render(grid *geo.Grid[geo.Cell]) error {
	if w, h := s.screen.Size(); grid.Width() > w || grid.Height() > h {
		return fmt.Errorf("%w: grid %dx%d, screen %dx%d",
			ErrScreenTooSmall, grid.Width(), grid.Height(), w, h)
	}
	s.screen.Clear()
	for y := 0; y < grid.Height(); y++ {
		for x, c := range grid.Row(y) {
			style, ok := cellStyles[c]
			if !ok {
				style = tcell.StyleDefault
			}
			s.screen.SetContent(x, y, rune(c), nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *Screen) Clear() error {
	s.screen.Clear()
	s.screen.Show()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// WaitQuit pumps terminal events until Esc, Ctrl-C or 'q' (ErrQuit),
// or until ctx is done (nil).
func (s *Screen) WaitQuit(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return ErrQuit
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
