// Package watcher reports on-disk changes to a single viewed file.
//
// FollowFile is the entry point: it watches the file's directory with
// fsnotify, keeps only content changes to the file, and debounces bursts so
// a save produces one event. EventDispatcher turns the event stream into
// callbacks for the session.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"time"
)

var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrPathNotExist    = errors.New("path does not exist")
	ErrEventOverflow   = errors.New("event channel full, dropping event")
)

// Op is a bit set of file system operations.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String joins the set operations with '|', e.g. "CREATE|WRITE".
func (op Op) String() string {
	var s string
	for _, n := range opNames {
		if op&n.op == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "NONE"
	}
	return s
}

// Has reports whether every bit of o is set in op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// ChangesContent is false only for chmod-only events.
func (op Op) ChangesContent() bool {
	return op&(OpCreate|OpWrite|OpRemove|OpRename) != 0
}

// Event is one change to Path.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Watcher is a source of change events. Both channels are closed by Close.
type Watcher interface {
	Watch(path string) error
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// EventFilter returns false for events that should be discarded.
type EventFilter func(event Event) bool

// FileFilter keeps events whose path resolves to path.
func FileFilter(path string) EventFilter {
	target := absPath(path)
	return func(event Event) bool {
		return absPath(event.Path) == target
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Config holds watcher settings.
type Config struct {
	// DebounceDelay is the quiet window FollowFile waits for. Default 100ms.
	DebounceDelay time.Duration

	// BufferSize is the capacity of the event and error channels. Default 100.
	BufferSize int

	// EventFilter, if set, must also accept an event for it to be delivered.
	EventFilter EventFilter
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: DefaultDebounceDelay,
		BufferSize:    100,
	}
}

// WatcherOption configures a watcher.
type WatcherOption func(*Config)

// WithDebounceDelay sets the quiet window.
func WithDebounceDelay(d time.Duration) WatcherOption {
	return func(c *Config) { c.DebounceDelay = d }
}

// WithBufferSize sets the channel capacity.
func WithBufferSize(size int) WatcherOption {
	return func(c *Config) { c.BufferSize = size }
}

// WithEventFilter sets an extra event filter.
func WithEventFilter(filter EventFilter) WatcherOption {
	return func(c *Config) { c.EventFilter = filter }
}

// EventDispatcher fans a watcher's channels out to registered callbacks.
type EventDispatcher struct {
	onEvent []func(Event)
	onError []func(error)
}

// NewEventDispatcher creates a dispatcher with no callbacks.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{}
}

// OnEvent registers fn for every delivered event.
func (d *EventDispatcher) OnEvent(fn func(Event)) {
	d.onEvent = append(d.onEvent, fn)
}

// OnError registers fn for every watcher error.
func (d *EventDispatcher) OnError(fn func(error)) {
	d.onError = append(d.onError, fn)
}

// Run delivers events and errors from w until ctx is done or w is closed.
func (d *EventDispatcher) Run(ctx context.Context, w Watcher) {
	events, errs := w.Events(), w.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			for _, fn := range d.onEvent {
				fn(ev)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			for _, fn := range d.onError {
				fn(err)
			}
		}
	}
}
