// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

// Cell represents a single character cell on screen.
type Cell struct {
	// Rune is the character to display.
	Rune rune
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell holding r.
func NewCell(r rune) Cell {
	return Cell{Rune: r}
}

// IsEmpty returns true if the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// ScreenPos represents a position on screen (0-indexed).
type ScreenPos struct {
	Row int
	Col int
}

// NewScreenPos creates a screen position.
func NewScreenPos(row, col int) ScreenPos {
	return ScreenPos{Row: row, Col: col}
}

// Equals returns true if two positions are the same.
func (p ScreenPos) Equals(other ScreenPos) bool {
	return p.Row == other.Row && p.Col == other.Col
}
