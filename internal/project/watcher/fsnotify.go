package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher converts fsnotify notifications into Events. Watching a
// directory reports changes to the entries directly inside it.
type FSNotifyWatcher struct {
	fsw    *fsnotify.Watcher
	filter EventFilter
	events chan Event
	errors chan error

	mu      sync.Mutex
	watched map[string]bool
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewFSNotifyWatcher starts an fsnotify watcher with nothing watched yet.
func NewFSNotifyWatcher(opts ...WatcherOption) (*FSNotifyWatcher, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FSNotifyWatcher{
		fsw:     fsw,
		filter:  cfg.EventFilter,
		events:  make(chan Event, cfg.BufferSize),
		errors:  make(chan error, cfg.BufferSize),
		watched: make(map[string]bool),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Watch adds path, which must exist.
func (w *FSNotifyWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	abs := absPath(path)
	if w.watched[abs] {
		return ErrAlreadyWatching
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if err := w.fsw.Add(abs); err != nil {
		return err
	}
	w.watched[abs] = true
	return nil
}

// Events returns the event channel.
func (w *FSNotifyWatcher) Events() <-chan Event { return w.events }

// Errors returns the error channel.
func (w *FSNotifyWatcher) Errors() <-chan error { return w.errors }

// Close stops delivery and closes both channels. Extra calls are no-ops.
func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return w.fsw.Close()
}

func (w *FSNotifyWatcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case fe, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.forward(fe)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *FSNotifyWatcher) forward(fe fsnotify.Event) {
	op := convertOp(fe.Op)
	if op == 0 {
		return
	}
	ev := Event{Path: filepath.Clean(fe.Name), Op: op, Timestamp: time.Now()}
	if w.filter != nil && !w.filter(ev) {
		return
	}
	select {
	case w.events <- ev:
	default:
		w.report(ErrEventOverflow)
	}
}

// report never blocks; errors past the buffer are dropped.
func (w *FSNotifyWatcher) report(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

func convertOp(fop fsnotify.Op) Op {
	var op Op
	for _, m := range []struct {
		from fsnotify.Op
		to   Op
	}{
		{fsnotify.Create, OpCreate},
		{fsnotify.Write, OpWrite},
		{fsnotify.Remove, OpRemove},
		{fsnotify.Rename, OpRename},
		{fsnotify.Chmod, OpChmod},
	} {
		if fop.Has(m.from) {
			op |= m.to
		}
	}
	return op
}

var _ Watcher = (*FSNotifyWatcher)(nil)
