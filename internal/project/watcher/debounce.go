package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used when a non-positive delay is given.
const DefaultDebounceDelay = 100 * time.Millisecond

// DebouncedWatcher holds events back until the inner watcher has been quiet
// for the delay. Events for one path within a quiet window are merged into
// one event whose Op is the union of theirs.
type DebouncedWatcher struct {
	inner Watcher
	delay time.Duration

	events chan Event
	errors chan error

	// pending and order are owned by the run goroutine.
	pending map[string]Event
	order   []string

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// Debounce wraps inner so that bursts of events are delivered once.
func Debounce(inner Watcher, delay time.Duration) *DebouncedWatcher {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	dw := &DebouncedWatcher{
		inner:   inner,
		delay:   delay,
		events:  make(chan Event, 100),
		errors:  make(chan error, 100),
		pending: make(map[string]Event),
		done:    make(chan struct{}),
	}
	dw.wg.Add(1)
	go dw.run()
	return dw
}

// Watch forwards to the inner watcher.
func (dw *DebouncedWatcher) Watch(path string) error { return dw.inner.Watch(path) }

// Events returns the debounced event channel.
func (dw *DebouncedWatcher) Events() <-chan Event { return dw.events }

// Errors returns the error channel. Errors are forwarded without delay.
func (dw *DebouncedWatcher) Errors() <-chan error { return dw.errors }

// Close drops pending events, closes both channels and then the inner
// watcher. Extra calls are no-ops.
func (dw *DebouncedWatcher) Close() error {
	dw.mu.Lock()
	if dw.closed {
		dw.mu.Unlock()
		return nil
	}
	dw.closed = true
	close(dw.done)
	dw.mu.Unlock()

	dw.wg.Wait()
	close(dw.events)
	close(dw.errors)
	return dw.inner.Close()
}

func (dw *DebouncedWatcher) run() {
	defer dw.wg.Done()

	timer := time.NewTimer(dw.delay)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	events, errs := dw.inner.Events(), dw.inner.Errors()
	for {
		select {
		case <-dw.done:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			dw.merge(ev)
			timer.Reset(dw.delay)
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return
			}
			select {
			case dw.errors <- err:
			default:
			}

		case <-fire:
			fire = nil
			dw.deliver()
		}
	}
}

func (dw *DebouncedWatcher) merge(ev Event) {
	prev, ok := dw.pending[ev.Path]
	if !ok {
		dw.order = append(dw.order, ev.Path)
		dw.pending[ev.Path] = ev
		return
	}
	prev.Op |= ev.Op
	prev.Timestamp = ev.Timestamp
	dw.pending[ev.Path] = prev
}

func (dw *DebouncedWatcher) deliver() {
	for _, path := range dw.order {
		select {
		case dw.events <- dw.pending[path]:
		default:
			// consumer is behind; the next change triggers another delivery
		}
	}
	dw.pending = make(map[string]Event)
	dw.order = dw.order[:0]
}

var _ Watcher = (*DebouncedWatcher)(nil)
