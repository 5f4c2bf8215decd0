package app

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/peek/internal/engine/buffer"
	"github.com/dshills/peek/internal/input/key"
	"github.com/dshills/peek/internal/project/watcher"
	"github.com/dshills/peek/internal/renderer"
	"github.com/dshills/peek/internal/renderer/backend"
	"github.com/dshills/peek/internal/renderer/cursor"
	"github.com/dshills/peek/internal/renderer/viewport"
)

// Application owns one viewing session: the loaded buffer, the terminal
// backend and the cursor/scroll state. All editor state is touched only by
// the goroutine running Run; other goroutines talk to it by posting
// interrupt events into the backend queue.
type Application struct {
	mu sync.Mutex

	opts    Options
	logger  *Logger
	buf     *buffer.Buffer
	backend backend.Backend

	coord    *cursor.Coordinator
	renderer *renderer.Renderer

	running atomic.Bool
	reloads atomic.Int64
}

// Options configures the application.
type Options struct {
	// Path is the file to view. Empty means an empty buffer.
	Path string

	// Version is shown in the welcome banner.
	Version string

	// TabWidth is the tab stop interval. Non-positive means the default.
	TabWidth int

	// Follow reloads Path whenever it changes on disk.
	Follow bool

	// FollowDelay is the quiet window before a change triggers a reload.
	FollowDelay time.Duration

	// Logger receives session logs. Nil means NullLogger.
	Logger *Logger
}

// interrupt payloads posted into the backend event queue.
type (
	quitRequest   struct{}
	reloadRequest struct{ path string }
)

// New creates an application and loads the file named in opts.
// A file that cannot be read is a setup failure.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	app := &Application{
		opts:   opts,
		logger: logger.WithComponent("app"),
	}

	buf, err := app.loadBuffer()
	if err != nil {
		return nil, err
	}
	app.buf = buf
	return app, nil
}

func (app *Application) loadBuffer() (*buffer.Buffer, error) {
	if app.opts.Path == "" {
		return buffer.New(buffer.WithTabWidth(app.opts.TabWidth)), nil
	}
	buf, err := buffer.LoadFile(app.opts.Path, buffer.WithTabWidth(app.opts.TabWidth))
	if err != nil {
		return nil, NewOperationError(OpLoadFile, app.opts.Path, err)
	}
	return buf, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run acquires the terminal, runs the event loop until the quit chord, a
// quit request or a fatal error, and always releases the terminal before
// returning. A clean quit returns nil.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return NewOperationError(OpInitTerminal, "", err)
	}
	r := renderer.New(b)
	defer func() {
		if v := recover(); v != nil {
			panicErr := NewRecoveredPanicError(v, string(debug.Stack()))
			app.logger.Error("recovered panic: %v\n%s", v, panicErr.Stack)
			err = panicErr
		}
		if !IsQuit(err) {
			_ = r.Clear()
			app.logger.Error("session failed: %v", err)
		}
		b.Shutdown()
		app.logger.Info("terminal released")
	}()

	width, height := r.Size()
	geometry, err := viewport.NewGeometry(width, height)
	if err != nil {
		return NewOperationError(OpTerminalSize, "", err)
	}

	view := viewport.NewViewport(geometry, viewport.WithBanner(viewport.Banner(app.opts.Version)))
	app.coord = cursor.NewCoordinator(app.buf, view)
	app.renderer = r

	app.logger.Info("session started: file=%q rows=%d geometry=%s", app.opts.Path, app.buf.Len(), geometry)

	loopDone := make(chan struct{})
	defer close(loopDone)
	go func() {
		select {
		case <-ctx.Done():
			b.PostEvent(backend.InterruptEvent(quitRequest{}))
		case <-loopDone:
		}
	}()

	if app.opts.Follow && app.opts.Path != "" {
		stop := app.startFollow(ctx, b)
		defer stop()
	}

	return app.loop(b)
}

func (app *Application) loop(b backend.Backend) error {
	for {
		if err := app.renderer.Render(app.coord.Frame(), app.coord.ScreenPosition()); err != nil {
			return NewOperationError(OpRefreshScreen, "", err)
		}

		quit, err := app.handleEvent(b.PollEvent())
		if err != nil {
			return err
		}
		if quit {
			app.logger.Info("quit after %d frames", app.renderer.FrameCount())
			return nil
		}
	}
}

// handleEvent applies one backend event and reports whether the loop
// should end.
func (app *Application) handleEvent(ev backend.Event) (bool, error) {
	switch ev.Type {
	case backend.EventKey:
		ke, ok := translateKey(ev)
		if !ok {
			return false, nil
		}
		intent := key.Map(ke)
		if intent == key.IntentQuit {
			return true, nil
		}
		if !intent.IsMovement() {
			return false, nil
		}
		app.coord.Apply(intent)
		app.logger.Debug("key %s -> %s cursor=%+v", ke, intent, app.coord.Cursor())

	case backend.EventResize:
		app.logger.Debug("resize to %dx%d ignored", ev.Width, ev.Height)

	case backend.EventInterrupt:
		switch req := ev.Data.(type) {
		case quitRequest:
			return true, nil
		case reloadRequest:
			app.reload(req.path)
		}

	case backend.EventError:
		return false, NewOperationError(OpReadKey, "", ev.Err)
	}
	return false, nil
}

// reload replaces the buffer with the current file contents. A file that
// vanished or cannot be read leaves the last loaded content on screen.
func (app *Application) reload(path string) {
	buf, err := buffer.LoadFile(path, buffer.WithTabWidth(app.opts.TabWidth))
	if err != nil {
		app.logger.Warn("reload %s: %v", path, err)
		return
	}
	app.buf = buf
	app.coord.SetBuffer(buf)
	n := app.reloads.Add(1)
	app.logger.Info("reloaded %s: rows=%d reloads=%d", path, buf.Len(), n)
}

// startFollow watches the viewed file and posts reload requests. Failure
// to watch is logged and the session continues without follow mode.
func (app *Application) startFollow(ctx context.Context, b backend.Backend) func() {
	log := app.logger.WithComponent("follow")

	w, err := watcher.FollowFile(app.opts.Path, watcher.WithDebounceDelay(app.opts.FollowDelay))
	if err != nil {
		log.Warn("%v", NewOperationError(OpFollowFile, app.opts.Path, err))
		return func() {}
	}

	d := watcher.NewEventDispatcher()
	d.OnEvent(func(e watcher.Event) {
		log.Debug("change %s on %s", e.Op, e.Path)
		b.PostEvent(backend.InterruptEvent(reloadRequest{path: app.opts.Path}))
	})
	d.OnError(func(err error) {
		log.Warn("watch error: %v", err)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx, w)
	}()

	log.Info("following %s", app.opts.Path)
	return func() {
		_ = w.Close()
		<-done
	}
}

// Shutdown asks a running session to quit through the event loop so that
// the terminal is released on the loop's own goroutine.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b != nil {
		b.PostEvent(backend.InterruptEvent(quitRequest{}))
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Buffer returns the buffer currently shown.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Cursor returns the cursor of the last session, or the zero state before
// Run.
func (app *Application) Cursor() cursor.State {
	if app.coord == nil {
		return cursor.State{}
	}
	return app.coord.Cursor()
}

// Reloads returns how many follow-mode reloads have been applied.
func (app *Application) Reloads() int64 {
	return app.reloads.Load()
}
