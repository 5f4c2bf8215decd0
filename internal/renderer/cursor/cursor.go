// Package cursor coordinates the cursor position with the scroll window.
//
// The Coordinator owns the cursor (buffer row and raw column) and the scroll
// offsets. Every movement is followed by normalization, which keeps the raw
// column inside the current row, and by a scroll update, which keeps the
// cursor inside the visible window.
package cursor

import (
	"github.com/dshills/peek/internal/engine/buffer"
	"github.com/dshills/peek/internal/input/key"
	"github.com/dshills/peek/internal/renderer/core"
	"github.com/dshills/peek/internal/renderer/viewport"
)

// State is a cursor position in buffer coordinates.
// Row may equal the buffer length, one past the last row.
type State struct {
	Row int
	Col buffer.RawColumn
}

// Coordinator applies movement intents to the cursor and scroll window.
// It is not safe for concurrent use; the event loop owns it.
type Coordinator struct {
	buf    *buffer.Buffer
	view   *viewport.Viewport
	cursor State
	scroll viewport.ScrollState
}

// NewCoordinator creates a coordinator over buf using view for geometry and
// drawing. A nil buffer is treated as empty and a nil view gets
// viewport.DefaultGeometry.
func NewCoordinator(buf *buffer.Buffer, view *viewport.Viewport) *Coordinator {
	if buf == nil {
		buf = buffer.New()
	}
	if view == nil {
		view = viewport.NewViewport(viewport.DefaultGeometry)
	}
	c := &Coordinator{buf: buf, view: view}
	c.Scroll()
	return c
}

// Cursor returns the current cursor position.
func (c *Coordinator) Cursor() State {
	return c.cursor
}

// ScrollState returns the current scroll offsets.
func (c *Coordinator) ScrollState() viewport.ScrollState {
	return c.scroll
}

// Buffer returns the buffer being viewed.
func (c *Coordinator) Buffer() *buffer.Buffer {
	return c.buf
}

// Geometry returns the window size.
func (c *Coordinator) Geometry() viewport.Geometry {
	return c.view.Geometry()
}

// Apply performs one intent. Non-movement intents change nothing.
func (c *Coordinator) Apply(intent key.Intent) {
	switch intent {
	case key.IntentUp:
		c.up()
	case key.IntentDown:
		c.down()
	case key.IntentLeft:
		if c.cursor.Col > 0 {
			c.cursor.Col--
		}
	case key.IntentRight:
		if c.cursor.Row < c.buf.Len() && c.cursor.Col < c.buf.RawLen(c.cursor.Row) {
			c.cursor.Col++
		}
	case key.IntentHome:
		c.cursor.Col = 0
	case key.IntentEnd:
		c.cursor.Col = c.buf.RawLen(c.cursor.Row)
	case key.IntentPageUp:
		for i := 0; i < c.view.Height(); i++ {
			c.up()
		}
	case key.IntentPageDown:
		for i := 0; i < c.view.Height(); i++ {
			c.down()
		}
	}

	c.Normalize()
	c.Scroll()
}

func (c *Coordinator) up() {
	if c.cursor.Row > 0 {
		c.cursor.Row--
	}
}

func (c *Coordinator) down() {
	if c.cursor.Row < c.buf.Len() {
		c.cursor.Row++
	}
}

// Normalize clamps the cursor into the buffer: the row to at most the buffer
// length and the raw column to the length of the row it is on.
func (c *Coordinator) Normalize() {
	if c.cursor.Row > c.buf.Len() {
		c.cursor.Row = c.buf.Len()
	}
	if c.cursor.Row < 0 {
		c.cursor.Row = 0
	}
	if limit := c.buf.RawLen(c.cursor.Row); c.cursor.Col > limit {
		c.cursor.Col = limit
	}
	if c.cursor.Col < 0 {
		c.cursor.Col = 0
	}
}

// Scroll moves the window so the cursor is visible.
func (c *Coordinator) Scroll() {
	c.scroll.Follow(c.cursor.Row, c.renderColumn(), c.view.Geometry())
}

// SetBuffer replaces the buffer, keeping the cursor as close to its old
// position as the new contents allow.
func (c *Coordinator) SetBuffer(buf *buffer.Buffer) {
	if buf == nil {
		buf = buffer.New()
	}
	c.buf = buf
	c.Normalize()
	c.Scroll()
}

// ScreenPosition returns where the terminal cursor belongs.
func (c *Coordinator) ScreenPosition() core.ScreenPos {
	pos, _ := c.scroll.ToScreen(c.cursor.Row, c.renderColumn(), c.view.Geometry())
	return pos
}

// Frame returns the draw operations for the current window.
func (c *Coordinator) Frame() []viewport.DrawOp {
	return c.view.Draw(c.buf, c.scroll)
}

func (c *Coordinator) renderColumn() buffer.RenderColumn {
	return c.buf.RenderColumn(c.cursor.Row, c.cursor.Col)
}
