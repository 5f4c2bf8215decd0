package buffer

import "github.com/dshills/peek/internal/renderer/layout"

// Buffer is an ordered sequence of rows; the index is the line number.
// An empty buffer is valid and has no rows at all.
type Buffer struct {
	rows []Row
	tabs *layout.TabExpander
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	return FromLines(nil, opts...)
}

// FromLines creates a buffer with one row per line.
func FromLines(lines []string, opts ...Option) *Buffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tabs := layout.NewTabExpander(o.tabWidth)
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = NewRow(line, tabs)
	}
	return &Buffer{rows: rows, tabs: tabs}
}

// Len returns the number of rows.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rows)
}

// IsEmpty reports whether the buffer has no rows.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Row returns the row at index i. The second result is false when i is
// outside the buffer.
func (b *Buffer) Row(i int) (Row, bool) {
	if i < 0 || i >= b.Len() {
		return Row{}, false
	}
	return b.rows[i], true
}

// RawLen returns the raw length of row i, or 0 when i is past the end.
func (b *Buffer) RawLen(i int) RawColumn {
	row, ok := b.Row(i)
	if !ok {
		return 0
	}
	return row.RawLen()
}

// RenderColumn converts a raw column on row i to a rendered column.
// Positions past the end of the buffer render at column 0.
func (b *Buffer) RenderColumn(i int, col RawColumn) RenderColumn {
	row, ok := b.Row(i)
	if !ok {
		return 0
	}
	return row.RenderColumn(col)
}

// Lines returns the raw text of every row.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.Len())
	for i := range lines {
		lines[i] = b.rows[i].Raw()
	}
	return lines
}

// TabWidth returns the tab stop interval the rows were rendered with.
func (b *Buffer) TabWidth() int {
	if b == nil || b.tabs == nil {
		return layout.DefaultTabWidth
	}
	return b.tabs.TabWidth()
}
