package testutil

import (
	"sync"

	"github.com/udisondev/gridpath/internal/geo"
)

// MockRenderer records what a renderer would have drawn.
// Set RenderErr to make every Render call fail.
type MockRenderer struct {
	mu        sync.Mutex
	frames    []string
	calls     []string
	clears    int
	RenderErr error
}

// NewMockRenderer creates an empty MockRenderer.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// Render stores the formatted grid.
func (m *MockRenderer) Render(grid *geo.Grid[geo.Cell]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "render")
	if m.RenderErr != nil {
		return m.RenderErr
	}
	m.frames = append(m.frames, geo.Format(grid))
	return nil
}

// Clear counts clear calls.
func (m *MockRenderer) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "clear")
	m.clears++
	return nil
}

func (m *MockRenderer) Close() error { return nil }

// Frames returns a copy of the rendered frames.
func (m *MockRenderer) Frames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.frames...)
}

// Clears returns how many times Clear was called.
func (m *MockRenderer) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.clears
}

// Calls returns "render" and "clear" in call order.
func (m *MockRenderer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.calls...)
}
