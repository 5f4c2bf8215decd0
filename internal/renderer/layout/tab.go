// Package layout provides the tab-stop arithmetic shared by row rendering
// and cursor placement.
package layout

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 4

// TabExpander provides tab expansion utilities.
//
// Columns handled here are character columns: every non-tab rune occupies
// exactly one column regardless of its encoded width.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.TabStopOffset(col)
}

// TabStopOffset returns how many spaces a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabWidth - (col % t.tabWidth)
}

// IsTabStop returns true if the given column is a tab stop.
func (t *TabExpander) IsTabStop(col int) bool {
	return col%t.tabWidth == 0
}

// ExpandedWidth calculates the rendered width of a string with tab expansion.
func (t *TabExpander) ExpandedWidth(s string) int {
	return t.RenderColumn([]rune(s), -1)
}

// Expand returns raw with every tab replaced by spaces up to the next tab stop.
// The result is always a fresh slice.
func (t *TabExpander) Expand(raw []rune) []rune {
	result := make([]rune, 0, len(raw))
	col := 0
	for _, r := range raw {
		if r != '\t' {
			result = append(result, r)
			col++
			continue
		}
		spaces := t.TabStopOffset(col)
		for i := 0; i < spaces; i++ {
			result = append(result, ' ')
		}
		col += spaces
	}
	return result
}

// ExpandTabs returns a string with tabs replaced by spaces.
func (t *TabExpander) ExpandTabs(s string) string {
	return string(t.Expand([]rune(s)))
}

// RenderColumn returns the rendered column reached after the first rawCol
// runes of raw. A negative rawCol or one past the end measures all of raw.
// The walk mirrors Expand exactly, so RenderColumn(raw, n) always equals
// len(Expand(raw[:n])).
func (t *TabExpander) RenderColumn(raw []rune, rawCol int) int {
	if rawCol < 0 || rawCol > len(raw) {
		rawCol = len(raw)
	}
	col := 0
	for _, r := range raw[:rawCol] {
		if r == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabWidth)
}
