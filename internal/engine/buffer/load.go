package buffer

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Load reads newline separated text into a buffer.
//
// A trailing carriage return is stripped from every line, and a final
// newline does not produce an extra empty row. Empty input yields an empty
// buffer.
func Load(r io.Reader, opts ...Option) (*Buffer, error) {
	br := bufio.NewReader(r)
	var lines []string

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	return FromLines(lines, opts...), nil
}

// LoadFile reads the file at path into a buffer.
func LoadFile(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, opts...)
}
