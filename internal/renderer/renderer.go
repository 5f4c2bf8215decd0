package renderer

import (
	"fmt"

	"github.com/dshills/peek/internal/renderer/backend"
	"github.com/dshills/peek/internal/renderer/core"
	"github.com/dshills/peek/internal/renderer/viewport"
)

// Renderer writes frames to a backend.
// It is driven from the event loop goroutine only.
type Renderer struct {
	backend    backend.Backend
	frameCount uint64
}

// New creates a new renderer with the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render draws one full frame: clear, every draw op at its own position,
// cursor placement, flush. A failed flush is returned and the frame is not
// counted.
func (r *Renderer) Render(ops []viewport.DrawOp, cursor core.ScreenPos) error {
	r.backend.Clear()

	for _, op := range ops {
		if op.Text == "" {
			continue
		}
		r.backend.WriteText(op.Col, op.Row, op.Text)
	}

	r.backend.ShowCursor(cursor.Col, cursor.Row)

	if err := r.backend.Show(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	r.frameCount++
	return nil
}

// Clear blanks the screen and flushes it.
func (r *Renderer) Clear() error {
	r.backend.Clear()
	return r.backend.Show()
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Size returns the current screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.backend.Size()
}
