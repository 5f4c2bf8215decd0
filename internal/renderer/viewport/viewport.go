// Package viewport decides which part of the buffer is visible and turns it
// into positioned draw operations.
package viewport

import (
	"errors"
	"fmt"

	"github.com/dshills/peek/internal/engine/buffer"
)

// ContinuationMarker is drawn on screen rows that lie past the end of the buffer.
const ContinuationMarker = "~"

// ErrInvalidGeometry is returned for a terminal size without usable cells.
var ErrInvalidGeometry = errors.New("invalid viewport geometry")

// Geometry is the size of the visible window in screen cells.
// It is sampled once at startup and fixed for the session.
type Geometry struct {
	Width  int
	Height int
}

// DefaultGeometry is the classic 80x24 terminal.
var DefaultGeometry = Geometry{Width: 80, Height: 24}

// NewGeometry validates a terminal size.
func NewGeometry(width, height int) (Geometry, error) {
	if width < 1 || height < 1 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	return Geometry{Width: width, Height: height}, nil
}

// String returns the geometry as WIDTHxHEIGHT.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// DrawOp writes Text starting at screen position (Col, Row).
// Every op is positioned on its own; nothing relies on the cursor advancing
// from a previous op.
type DrawOp struct {
	Row  int
	Col  int
	Text string
}

// Viewport renders buffer rows into a fixed-size window.
type Viewport struct {
	geometry Geometry
	banner   string
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithBanner sets the welcome text shown over an empty buffer.
func WithBanner(banner string) Option {
	return func(v *Viewport) {
		v.banner = banner
	}
}

// NewViewport creates a viewport with the given geometry.
// Width and height are clamped to a minimum of 1.
func NewViewport(geometry Geometry, opts ...Option) *Viewport {
	if geometry.Width < 1 {
		geometry.Width = 1
	}
	if geometry.Height < 1 {
		geometry.Height = 1
	}

	v := &Viewport{
		geometry: geometry,
		banner:   Banner("dev"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Geometry returns the viewport size.
func (v *Viewport) Geometry() Geometry {
	return v.geometry
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.geometry.Width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.geometry.Height
}

// Draw produces the draw operations for one frame, top row first.
//
// Screen rows backed by a buffer row show the rendered text from
// scroll.ColOffset, at most Width characters. Rows scrolled entirely past
// on the left produce nothing. Rows past the end of the buffer show the
// continuation marker, except for the banner row of an empty buffer.
func (v *Viewport) Draw(buf *buffer.Buffer, scroll ScrollState) []DrawOp {
	ops := make([]DrawOp, 0, v.geometry.Height)
	bannerRow := v.geometry.Height / 3

	for r := 0; r < v.geometry.Height; r++ {
		fileRow := r + scroll.RowOffset

		row, ok := buf.Row(fileRow)
		if !ok {
			if buf.IsEmpty() && r == bannerRow {
				ops = append(ops, v.bannerOps(r)...)
			} else {
				ops = append(ops, DrawOp{Row: r, Col: 0, Text: ContinuationMarker})
			}
			continue
		}

		if row.RenderLen() < scroll.ColOffset {
			continue
		}
		end := scroll.ColOffset + buffer.RenderColumn(v.geometry.Width)
		ops = append(ops, DrawOp{Row: r, Col: 0, Text: row.Slice(scroll.ColOffset, end)})
	}

	return ops
}
