package viewport

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/peek/internal/engine/buffer"
)

func mustGeometry(t *testing.T, width, height int) Geometry {
	t.Helper()
	g, err := NewGeometry(width, height)
	if err != nil {
		t.Fatalf("NewGeometry(%d, %d): %v", width, height, err)
	}
	return g
}

// opsByRow groups draw operations by screen row.
func opsByRow(ops []DrawOp) map[int][]DrawOp {
	rows := make(map[int][]DrawOp)
	for _, op := range ops {
		rows[op.Row] = append(rows[op.Row], op)
	}
	return rows
}

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(80, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Width != 80 || g.Height != 24 {
		t.Errorf("expected 80x24, got %s", g)
	}

	for _, size := range [][2]int{{0, 24}, {80, 0}, {-1, -1}} {
		if _, err := NewGeometry(size[0], size[1]); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("NewGeometry(%d, %d): expected ErrInvalidGeometry, got %v", size[0], size[1], err)
		}
	}
}

func TestNewViewportClampsSize(t *testing.T) {
	v := NewViewport(Geometry{Width: 0, Height: -4})
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestDrawEmptyBufferBanner(t *testing.T) {
	v := NewViewport(mustGeometry(t, 80, 24), WithBanner(Banner("1.0.0")))
	ops := v.Draw(buffer.New(), ScrollState{})
	rows := opsByRow(ops)

	if len(rows) != 24 {
		t.Fatalf("expected ops for 24 rows, got %d", len(rows))
	}

	for r := 0; r < 24; r++ {
		if r == 8 {
			continue
		}
		got := rows[r]
		if len(got) != 1 || got[0].Col != 0 || got[0].Text != ContinuationMarker {
			t.Errorf("row %d: expected a single marker at column 0, got %+v", r, got)
		}
	}

	banner := Banner("1.0.0")
	bannerOps := rows[8]
	if len(bannerOps) != 2 {
		t.Fatalf("row 8: expected marker and banner, got %+v", bannerOps)
	}
	if bannerOps[0].Col != 0 || bannerOps[0].Text != ContinuationMarker {
		t.Errorf("row 8: expected marker at column 0, got %+v", bannerOps[0])
	}
	wantCol := (80 - len(banner)) / 2
	if bannerOps[1].Col != wantCol || bannerOps[1].Text != banner {
		t.Errorf("row 8: expected banner %q at column %d, got %+v", banner, wantCol, bannerOps[1])
	}
}

func TestDrawBannerTruncated(t *testing.T) {
	v := NewViewport(mustGeometry(t, 10, 3), WithBanner("a very long welcome banner"))
	rows := opsByRow(v.Draw(buffer.New(), ScrollState{}))

	got := rows[1]
	if len(got) != 1 {
		t.Fatalf("expected only the truncated banner, got %+v", got)
	}
	if got[0].Col != 0 || got[0].Text != "a very lon" {
		t.Errorf("expected truncated banner at column 0, got %+v", got[0])
	}
}

func TestDrawBannerExactWidth(t *testing.T) {
	v := NewViewport(mustGeometry(t, 5, 3), WithBanner("hello"))
	rows := opsByRow(v.Draw(buffer.New(), ScrollState{}))

	got := rows[1]
	if len(got) != 1 || got[0].Col != 0 || got[0].Text != "hello" {
		t.Errorf("expected banner at column 0 without marker, got %+v", got)
	}
}

func TestDrawBannerOneNarrower(t *testing.T) {
	// leftmost is 0, so no marker precedes the banner
	v := NewViewport(mustGeometry(t, 6, 3), WithBanner("hello"))
	rows := opsByRow(v.Draw(buffer.New(), ScrollState{}))

	got := rows[1]
	if len(got) != 1 || got[0].Col != 0 || got[0].Text != "hello" {
		t.Errorf("expected banner at column 0, got %+v", got)
	}
}

func TestDrawNoBannerWhenBufferHasRows(t *testing.T) {
	v := NewViewport(mustGeometry(t, 80, 24))
	buf := buffer.FromLines([]string{"only line"})
	rows := opsByRow(v.Draw(buf, ScrollState{}))

	for r, ops := range rows {
		for _, op := range ops {
			if strings.Contains(op.Text, "Peek editor") {
				t.Errorf("row %d: banner drawn over a non-empty buffer", r)
			}
		}
	}
	if rows[0][0].Text != "only line" {
		t.Errorf("row 0: expected buffer text, got %+v", rows[0])
	}
	if rows[8][0].Text != ContinuationMarker {
		t.Errorf("row 8: expected marker, got %+v", rows[8])
	}
}

func TestDrawRows(t *testing.T) {
	v := NewViewport(mustGeometry(t, 4, 3))
	buf := buffer.FromLines([]string{"abcdef", "gh", "\tx"})

	ops := v.Draw(buf, ScrollState{})
	expected := []DrawOp{
		{Row: 0, Col: 0, Text: "abcd"},
		{Row: 1, Col: 0, Text: "gh"},
		{Row: 2, Col: 0, Text: "    "},
	}
	if len(ops) != len(expected) {
		t.Fatalf("expected %d ops, got %+v", len(expected), ops)
	}
	for i := range expected {
		if ops[i] != expected[i] {
			t.Errorf("op %d: expected %+v, got %+v", i, expected[i], ops[i])
		}
	}
}

func TestDrawRowOffset(t *testing.T) {
	v := NewViewport(mustGeometry(t, 10, 3))
	buf := buffer.FromLines([]string{"zero", "one", "two", "three"})

	rows := opsByRow(v.Draw(buf, ScrollState{RowOffset: 2}))
	if rows[0][0].Text != "two" {
		t.Errorf("row 0: expected %q, got %+v", "two", rows[0])
	}
	if rows[1][0].Text != "three" {
		t.Errorf("row 1: expected %q, got %+v", "three", rows[1])
	}
	if rows[2][0].Text != ContinuationMarker {
		t.Errorf("row 2: expected marker, got %+v", rows[2])
	}
}

func TestDrawColOffset(t *testing.T) {
	v := NewViewport(mustGeometry(t, 3, 4))
	buf := buffer.FromLines([]string{"abcdefgh", "ab", "abcd", "a\tb"})

	rows := opsByRow(v.Draw(buf, ScrollState{ColOffset: 2}))

	if got := rows[0]; len(got) != 1 || got[0].Text != "cde" {
		t.Errorf("row 0: expected %q, got %+v", "cde", got)
	}
	// Rendered length equals the offset: an empty op
	if got := rows[1]; len(got) != 1 || got[0].Text != "" {
		t.Errorf("row 1: expected empty text, got %+v", got)
	}
	if got := rows[2]; len(got) != 1 || got[0].Text != "cd" {
		t.Errorf("row 2: expected %q, got %+v", "cd", got)
	}
	if got := rows[3]; len(got) != 1 || got[0].Text != "  b" {
		t.Errorf("row 3: expected %q, got %+v", "  b", got)
	}
}

func TestDrawRowScrolledPast(t *testing.T) {
	v := NewViewport(mustGeometry(t, 5, 2))
	buf := buffer.FromLines([]string{"ab", "abcdefghij"})

	rows := opsByRow(v.Draw(buf, ScrollState{ColOffset: 5}))
	if _, ok := rows[0]; ok {
		t.Errorf("row 0: expected no ops for a row shorter than the offset, got %+v", rows[0])
	}
	if got := rows[1]; len(got) != 1 || got[0].Text != "fghij" {
		t.Errorf("row 1: expected %q, got %+v", "fghij", got)
	}
}

func TestDrawMultiByteCharacters(t *testing.T) {
	v := NewViewport(mustGeometry(t, 3, 1))
	buf := buffer.FromLines([]string{"日本語テキスト"})

	ops := v.Draw(buf, ScrollState{ColOffset: 2})
	if len(ops) != 1 || ops[0].Text != "語テキ" {
		t.Errorf("expected %q, got %+v", "語テキ", ops)
	}
}

func TestDrawNilBuffer(t *testing.T) {
	v := NewViewport(mustGeometry(t, 40, 6))
	ops := v.Draw(nil, ScrollState{})
	if len(opsByRow(ops)) != 6 {
		t.Errorf("expected all rows drawn for nil buffer, got %+v", ops)
	}
}
