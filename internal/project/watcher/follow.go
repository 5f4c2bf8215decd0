package watcher

import (
	"fmt"
	"path/filepath"
)

// FollowFile returns a debounced watcher that reports content changes to
// the file at path. The parent directory is watched rather than the file
// itself so that replace-by-rename saves and deletions followed by
// re-creation are still reported. Chmod-only events are dropped.
func FollowFile(path string, opts ...WatcherOption) (*DebouncedWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	onFile := FileFilter(abs)
	extra := cfg.EventFilter
	filter := func(event Event) bool {
		if !event.Op.ChangesContent() || !onFile(event) {
			return false
		}
		return extra == nil || extra(event)
	}

	inner, err := NewFSNotifyWatcher(
		WithBufferSize(cfg.BufferSize),
		WithEventFilter(filter),
	)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := inner.Watch(filepath.Dir(abs)); err != nil {
		_ = inner.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return Debounce(inner, cfg.DebounceDelay), nil
}
