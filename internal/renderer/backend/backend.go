// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"errors"
	"sync"

	"github.com/dshills/peek/internal/renderer/core"
)

var (
	// ErrScreenClosed is returned when drawing after the screen was released.
	ErrScreenClosed = errors.New("screen closed")

	// ErrInputClosed is reported when the input stream ends.
	ErrInputClosed = errors.New("input closed")
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
	EventError
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Interrupt event payload
	Data any

	// Error event cause
	Err error
}

// KeyEvent creates a key event.
func KeyEvent(k Key, r rune, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Rune: r, Mod: mod}
}

// RuneEvent creates a key event for a character.
func RuneEvent(r rune, mod ModMask) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Mod: mod}
}

// InterruptEvent creates an interrupt event carrying data.
func InterruptEvent(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// ErrorEvent creates an event reporting an input failure.
func ErrorEvent(err error) Event {
	return Event{Type: EventError, Err: err}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// IsCtrl returns true for the Ctrl-letter keys.
func (k Key) IsCtrl() bool {
	return k >= KeyCtrlA && k <= KeyCtrlZ
}

// CtrlRune returns the lowercase letter of a Ctrl-letter key, or 0.
func (k Key) CtrlRune() rune {
	if !k.IsCtrl() {
		return 0
	}
	return 'a' + rune(k-KeyCtrlA)
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use and switches the terminal to raw mode.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// Must be called when done with the backend. Safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen.
	Clear()

	// WriteText writes text starting at column x of row y, one cell per
	// character. Cells outside the terminal are silently dropped.
	WriteText(x, y int, text string)

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// Show synchronizes the internal buffer with the actual display.
	// Call this after making changes to flush them to the screen.
	Show() error

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	// Safe to call from any goroutine.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for testing.
// Events are scripted with PostEvent and failures injected with the
// Set*Error methods.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	initialized   bool
	shutdowns     int
	shows         int
	initErr       error
	showErr       error
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initErr != nil {
		return b.initErr
	}
	b.cells = newGrid(b.width, b.height)
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initialized = false
	b.shutdowns++
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cells = newGrid(b.width, b.height)
}

func (b *NullBackend) WriteText(x, y int, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= len(b.cells) {
		return
	}
	for _, r := range text {
		if x >= 0 && x < b.width {
			b.cells[y][x] = core.NewCell(r)
		}
		x++
	}
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) Show() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.showErr != nil {
		return b.showErr
	}
	if !b.initialized {
		return ErrScreenClosed
	}
	b.shows++
	return nil
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// SetInitError makes the next Init fail with err.
func (b *NullBackend) SetInitError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initErr = err
}

// SetShowError makes every Show fail with err.
func (b *NullBackend) SetShowError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.showErr = err
}

// GetCell returns the cell at the given position.
// Returns an empty cell for positions outside the terminal.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y >= 0 && y < len(b.cells) && x >= 0 && x < b.width {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Line returns row y as text with empty cells shown as spaces and
// trailing spaces removed.
func (b *NullBackend) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= len(b.cells) {
		return ""
	}
	runes := make([]rune, 0, b.width)
	end := 0
	for _, c := range b.cells[y] {
		if c.IsEmpty() {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.Rune)
		end = len(runes)
	}
	return string(runes[:end])
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorX, b.cursorY, b.cursorVisible
}

// Initialized returns true between Init and Shutdown.
func (b *NullBackend) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.initialized
}

// ShutdownCount returns how many times Shutdown was called.
func (b *NullBackend) ShutdownCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shutdowns
}

// ShowCount returns how many frames were flushed successfully.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

func newGrid(width, height int) [][]core.Cell {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
