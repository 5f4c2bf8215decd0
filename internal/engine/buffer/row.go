package buffer

import (
	"github.com/dshills/peek/internal/renderer/layout"
)

// RawColumn is a character offset into a line's unmodified text.
type RawColumn int

// RenderColumn is a character offset into a line's tab-expanded text.
type RenderColumn int

// Row is a single line of text together with its rendered form.
type Row struct {
	raw      []rune
	rendered []rune
	tabs     *layout.TabExpander
}

// NewRow builds a row from raw line text. The rendered form is derived
// from raw and the expander's tab width and is never modified afterwards.
func NewRow(raw string, tabs *layout.TabExpander) Row {
	if tabs == nil {
		tabs = layout.DefaultTabExpander()
	}
	runes := []rune(raw)
	return Row{
		raw:      runes,
		rendered: tabs.Expand(runes),
		tabs:     tabs,
	}
}

// Raw returns the line as read from the source.
func (r Row) Raw() string {
	return string(r.raw)
}

// Render returns the tab-expanded display text.
func (r Row) Render() string {
	return string(r.rendered)
}

// RawLen returns the number of characters in the raw line.
func (r Row) RawLen() RawColumn {
	return RawColumn(len(r.raw))
}

// RenderLen returns the number of characters in the rendered line.
func (r Row) RenderLen() RenderColumn {
	return RenderColumn(len(r.rendered))
}

// ClampRaw limits col to [0, RawLen()].
func (r Row) ClampRaw(col RawColumn) RawColumn {
	if col < 0 {
		return 0
	}
	if n := r.RawLen(); col > n {
		return n
	}
	return col
}

// RenderColumn converts a raw column to the rendered column where a cursor
// at that position is drawn. Columns past the end clamp to the raw length.
func (r Row) RenderColumn(col RawColumn) RenderColumn {
	col = r.ClampRaw(col)
	if r.tabs == nil {
		return RenderColumn(col)
	}
	return RenderColumn(r.tabs.RenderColumn(r.raw, int(col)))
}

// Slice returns the rendered characters in [from, to), clamped to the
// rendered length. Slicing works on characters, never on bytes.
func (r Row) Slice(from, to RenderColumn) string {
	n := r.RenderLen()
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return ""
	}
	return string(r.rendered[from:to])
}
