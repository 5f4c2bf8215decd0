package buffer

import (
	"testing"

	"github.com/dshills/peek/internal/renderer/layout"
)

func TestNewRowWithoutTabs(t *testing.T) {
	inputs := []string{"", "abc", "hello world", "héllo wörld", "日本語"}
	for _, in := range inputs {
		row := NewRow(in, layout.NewTabExpander(4))
		if row.Render() != in {
			t.Errorf("Render(%q) = %q, expected raw text unchanged", in, row.Render())
		}
		if row.Raw() != in {
			t.Errorf("Raw(%q) = %q", in, row.Raw())
		}
	}
}

func TestNewRowTabExpansion(t *testing.T) {
	tests := []struct {
		raw      string
		tabWidth int
		expected string
	}{
		{"\tA", 4, "    A"},
		{"A\tB", 4, "A   B"},
		{"\tA", 8, "        A"},
		{"abcd\tx", 4, "abcd    x"},
		{"\t\t", 2, "    "},
	}

	for _, tt := range tests {
		row := NewRow(tt.raw, layout.NewTabExpander(tt.tabWidth))
		if got := row.Render(); got != tt.expected {
			t.Errorf("NewRow(%q, %d).Render() = %q, expected %q", tt.raw, tt.tabWidth, got, tt.expected)
		}
	}
}

func TestNewRowNilExpander(t *testing.T) {
	row := NewRow("\tx", nil)
	if row.Render() != "    x" {
		t.Errorf("expected default tab width 4, got %q", row.Render())
	}
}

func TestRowRawLenCountsCharacters(t *testing.T) {
	tests := []struct {
		raw      string
		expected RawColumn
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
		{"a\tb", 3},
	}

	for _, tt := range tests {
		row := NewRow(tt.raw, nil)
		if got := row.RawLen(); got != tt.expected {
			t.Errorf("RawLen(%q) = %d, expected %d", tt.raw, got, tt.expected)
		}
	}
}

func TestRowRenderColumn(t *testing.T) {
	row := NewRow("a\tb日\tc", layout.NewTabExpander(4))

	tests := []struct {
		col      RawColumn
		expected RenderColumn
	}{
		{0, 0},
		{1, 1},
		{2, 4},
		{3, 5},
		{4, 8},
		{5, 9},
		{6, 9},  // Clamped
		{-3, 0}, // Clamped
	}

	for _, tt := range tests {
		if got := row.RenderColumn(tt.col); got != tt.expected {
			t.Errorf("RenderColumn(%d) = %d, expected %d", tt.col, got, tt.expected)
		}
	}
}

func TestRowRenderColumnMatchesRenderedPrefix(t *testing.T) {
	tabs := layout.NewTabExpander(4)
	for _, raw := range []string{"", "x", "\t", "ab\tc\t\td", "ü\tß\t"} {
		row := NewRow(raw, tabs)
		runes := []rune(raw)
		for c := 0; c <= len(runes); c++ {
			prefix := NewRow(string(runes[:c]), tabs)
			if got, want := row.RenderColumn(RawColumn(c)), prefix.RenderLen(); got != want {
				t.Errorf("%q at raw %d: RenderColumn %d, rendered prefix length %d", raw, c, got, want)
			}
		}
	}
}

func TestRowSlice(t *testing.T) {
	row := NewRow("日本語テキスト", nil)

	tests := []struct {
		from, to RenderColumn
		expected string
	}{
		{0, 3, "日本語"},
		{3, 7, "テキスト"},
		{5, 100, "スト"},
		{7, 10, ""},
		{9, 12, ""},
		{-2, 1, "日"},
		{4, 2, ""},
	}

	for _, tt := range tests {
		if got := row.Slice(tt.from, tt.to); got != tt.expected {
			t.Errorf("Slice(%d, %d) = %q, expected %q", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestRowClampRaw(t *testing.T) {
	row := NewRow("hello", nil)
	if got := row.ClampRaw(20); got != 5 {
		t.Errorf("ClampRaw(20) = %d, expected 5", got)
	}
	if got := row.ClampRaw(-1); got != 0 {
		t.Errorf("ClampRaw(-1) = %d, expected 0", got)
	}
	if got := row.ClampRaw(3); got != 3 {
		t.Errorf("ClampRaw(3) = %d, expected 3", got)
	}
}
