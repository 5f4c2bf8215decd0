// Package app provides the viewer session: terminal acquisition, the event
// loop, follow-mode reloads and exit plumbing.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called while a session is active.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before a backend was set.
	ErrNoBackend = errors.New("no terminal backend")
)

// Operation names used in OperationError. They double as the diagnostic
// printed on fatal exit.
const (
	OpLoadFile      = "load file"
	OpInitTerminal  = "init terminal"
	OpTerminalSize  = "query terminal size"
	OpRefreshScreen = "refresh screen"
	OpReadKey       = "read key"
	OpFollowFile    = "follow file"
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "load file", "read key")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for OperationError.
// Matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// RecoveredPanicError wraps a panic value raised inside the event loop.
// The stack is kept for the log file and left out of Error so the terminal
// diagnostic stays on one line.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Value: value,
		Stack: stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsQuit reports whether err represents a clean quit.
func IsQuit(err error) bool {
	return err == nil || errors.Is(err, ErrQuit)
}
