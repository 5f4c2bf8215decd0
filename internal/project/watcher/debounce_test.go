package watcher

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type mockWatcher struct {
	mu      sync.Mutex
	events  chan Event
	errors  chan error
	watched []string
	closed  bool
}

func newMockWatcher() *mockWatcher {
	return &mockWatcher{
		events: make(chan Event, 100),
		errors: make(chan error, 100),
	}
}

func (m *mockWatcher) Watch(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watched = append(m.watched, path)
	return nil
}

func (m *mockWatcher) Events() <-chan Event { return m.events }
func (m *mockWatcher) Errors() <-chan error { return m.errors }

func (m *mockWatcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
		close(m.errors)
	}
	return nil
}

func TestDebounceDefaultDelay(t *testing.T) {
	dw := Debounce(newMockWatcher(), 0)
	defer dw.Close()
	if dw.delay != DefaultDebounceDelay {
		t.Errorf("delay = %v, want %v", dw.delay, DefaultDebounceDelay)
	}
}

func TestDebounceForwardsWatch(t *testing.T) {
	mock := newMockWatcher()
	dw := Debounce(mock, 20*time.Millisecond)
	defer dw.Close()

	if err := dw.Watch("/data"); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if len(mock.watched) != 1 || mock.watched[0] != "/data" {
		t.Errorf("inner watched = %v, want [/data]", mock.watched)
	}
}

func TestDebounceCoalescesBurst(t *testing.T) {
	mock := newMockWatcher()
	dw := Debounce(mock, 80*time.Millisecond)
	defer dw.Close()

	path := "/data/log.txt"
	mock.events <- Event{Path: path, Op: OpCreate}
	time.Sleep(10 * time.Millisecond)
	mock.events <- Event{Path: path, Op: OpWrite}
	time.Sleep(10 * time.Millisecond)
	mock.events <- Event{Path: path, Op: OpWrite}

	select {
	case got := <-dw.Events():
		if got.Op != OpCreate|OpWrite {
			t.Errorf("coalesced op = %v, want CREATE|WRITE", got.Op)
		}
	case <-time.After(time.Second):
		t.Fatal("no debounced event")
	}

	select {
	case extra := <-dw.Events():
		t.Errorf("unexpected second event %+v", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounceSeparatePaths(t *testing.T) {
	mock := newMockWatcher()
	dw := Debounce(mock, 30*time.Millisecond)
	defer dw.Close()

	mock.events <- Event{Path: "/a", Op: OpWrite}
	mock.events <- Event{Path: "/b", Op: OpWrite}

	var order []string
	timeout := time.After(time.Second)
	for len(order) < 2 {
		select {
		case e := <-dw.Events():
			order = append(order, e.Path)
		case <-timeout:
			t.Fatalf("got %v, want events for /a and /b", order)
		}
	}
	if order[0] != "/a" || order[1] != "/b" {
		t.Errorf("delivery order = %v, want arrival order [/a /b]", order)
	}
}

func TestDebounceForwardsErrors(t *testing.T) {
	mock := newMockWatcher()
	dw := Debounce(mock, time.Second)
	defer dw.Close()

	boom := errors.New("boom")
	mock.errors <- boom
	select {
	case err := <-dw.Errors():
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("error not forwarded")
	}
}

func TestDebounceCloseDropsPending(t *testing.T) {
	mock := newMockWatcher()
	dw := Debounce(mock, 5*time.Second)

	mock.events <- Event{Path: "/a", Op: OpWrite}
	time.Sleep(20 * time.Millisecond)

	if err := dw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := dw.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-dw.Events(); ok {
		t.Error("pending event delivered after Close")
	}
	if !mock.closed {
		t.Error("inner watcher not closed")
	}
}
