// Package buffer holds the text being viewed as an ordered sequence of rows.
//
// Each Row keeps two coordinate spaces apart:
//
//   - RawColumn counts characters (runes) of the line as it was read.
//   - RenderColumn counts characters of the tab-expanded display text.
//
// Conversion from raw to rendered columns only happens through Row methods,
// which share their tab arithmetic with the rendered text itself, so cursor
// placement and drawn text never disagree.
//
// Basic usage:
//
//	buf, err := buffer.LoadFile("notes.txt", buffer.WithTabWidth(8))
//	if err != nil {
//	    return err
//	}
//	row := buf.Row(0)
//	col := row.RenderColumn(3)
//
// Buffers and rows are immutable once built; a reload produces a new Buffer.
package buffer
