package viewport

import (
	"github.com/dshills/peek/internal/engine/buffer"
	"github.com/dshills/peek/internal/renderer/core"
)

// ScrollState is the top-left corner of the visible window: a buffer row
// index and a rendered column.
type ScrollState struct {
	RowOffset int
	ColOffset buffer.RenderColumn
}

// Follow moves the window the least amount needed to contain the cursor at
// (row, col). The four comparisons run in a fixed order: above, below,
// left of, right of.
func (s *ScrollState) Follow(row int, col buffer.RenderColumn, geometry Geometry) {
	if row < s.RowOffset {
		s.RowOffset = row
	}
	if row >= s.RowOffset+geometry.Height {
		s.RowOffset = row - geometry.Height + 1
	}
	if col < s.ColOffset {
		s.ColOffset = col
	}
	if col >= s.ColOffset+buffer.RenderColumn(geometry.Width) {
		s.ColOffset = col - buffer.RenderColumn(geometry.Width) + 1
	}
}

// Contains returns true if (row, col) lies inside the window.
func (s ScrollState) Contains(row int, col buffer.RenderColumn, geometry Geometry) bool {
	return row >= s.RowOffset && row < s.RowOffset+geometry.Height &&
		col >= s.ColOffset && col < s.ColOffset+buffer.RenderColumn(geometry.Width)
}

// ToScreen converts a buffer row and rendered column to a screen position.
// The second result is false when the position is outside the window.
func (s ScrollState) ToScreen(row int, col buffer.RenderColumn, geometry Geometry) (core.ScreenPos, bool) {
	pos := core.NewScreenPos(row-s.RowOffset, int(col-s.ColOffset))
	return pos, s.Contains(row, col, geometry)
}
