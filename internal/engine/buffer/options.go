package buffer

import "github.com/dshills/peek/internal/renderer/layout"

// Option is a functional option for configuring a Buffer.
type Option func(*options)

type options struct {
	tabWidth int
}

func defaultOptions() options {
	return options{tabWidth: layout.DefaultTabWidth}
}

// WithTabWidth sets the tab stop interval used to render rows.
// Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.tabWidth = width
		}
	}
}
