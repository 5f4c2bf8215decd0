package viewport

// Banner returns the welcome text for the given version.
func Banner(version string) string {
	return "Peek editor -- version " + version
}

// bannerOps centers the banner on screen row r. A banner at least as wide
// as the viewport is truncated and starts at column 0; otherwise the
// continuation marker still occupies column 0.
func (v *Viewport) bannerOps(r int) []DrawOp {
	width := v.geometry.Width
	text := []rune(v.banner)
	if len(text) > width {
		text = text[:width]
	}

	if len(text) >= width {
		return []DrawOp{{Row: r, Col: 0, Text: string(text)}}
	}

	leftmost := (width - len(text)) / 2
	ops := make([]DrawOp, 0, 2)
	if leftmost > 0 {
		ops = append(ops, DrawOp{Row: r, Col: 0, Text: ContinuationMarker})
	}
	return append(ops, DrawOp{Row: r, Col: leftmost, Text: string(text)})
}
