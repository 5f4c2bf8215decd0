package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	buf := New()
	if !buf.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if buf.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", buf.Len())
	}
	if _, ok := buf.Row(0); ok {
		t.Error("Row(0) should not exist in an empty buffer")
	}
}

func TestNilBuffer(t *testing.T) {
	var buf *Buffer
	if buf.Len() != 0 {
		t.Errorf("nil buffer Len = %d", buf.Len())
	}
	if buf.RawLen(3) != 0 {
		t.Errorf("nil buffer RawLen = %d", buf.RawLen(3))
	}
	if buf.TabWidth() != 4 {
		t.Errorf("nil buffer TabWidth = %d", buf.TabWidth())
	}
}

func TestFromLines(t *testing.T) {
	buf := FromLines([]string{"abc", "de", "fghij"})

	if buf.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", buf.Len())
	}
	if got := buf.RawLen(2); got != 5 {
		t.Errorf("RawLen(2) = %d, expected 5", got)
	}
	if got := buf.RawLen(3); got != 0 {
		t.Errorf("RawLen past end = %d, expected 0", got)
	}
	if got := buf.RawLen(-1); got != 0 {
		t.Errorf("RawLen(-1) = %d, expected 0", got)
	}

	row, ok := buf.Row(1)
	if !ok || row.Raw() != "de" {
		t.Errorf("Row(1) = %q, %v", row.Raw(), ok)
	}
}

func TestBufferTabWidthOption(t *testing.T) {
	buf := FromLines([]string{"\tx"}, WithTabWidth(8))
	if buf.TabWidth() != 8 {
		t.Errorf("TabWidth = %d, expected 8", buf.TabWidth())
	}
	if got := buf.RenderColumn(0, 1); got != 8 {
		t.Errorf("RenderColumn(0, 1) = %d, expected 8", got)
	}

	// Invalid widths are ignored
	buf = FromLines([]string{"\tx"}, WithTabWidth(0))
	if buf.TabWidth() != 4 {
		t.Errorf("TabWidth = %d, expected default 4", buf.TabWidth())
	}
}

func TestBufferRenderColumnPastEnd(t *testing.T) {
	buf := FromLines([]string{"\tx"})
	if got := buf.RenderColumn(5, 3); got != 0 {
		t.Errorf("RenderColumn past end = %d, expected 0", got)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single line no newline", "abc", []string{"abc"}},
		{"single line with newline", "abc\n", []string{"abc"}},
		{"multiple lines", "abc\nde\nfghij\n", []string{"abc", "de", "fghij"}},
		{"blank lines kept", "a\n\nb\n\n", []string{"a", "", "b", ""}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"tabs preserved", "\tx\n", []string{"\tx"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Load(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got := buf.Lines(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lines() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestLoadReadError(t *testing.T) {
	if _, err := Load(failingReader{}); err == nil {
		t.Error("expected error from failing reader")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("abc\nde\nfghij\n"), 0644); err != nil {
		t.Fatal(err)
	}

	buf, err := LoadFile(path, WithTabWidth(2))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if buf.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", buf.Len())
	}
	if buf.TabWidth() != 2 {
		t.Errorf("TabWidth = %d, expected 2", buf.TabWidth())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
