// Package renderer provides the display layer for the Peek viewer.
//
// The renderer is responsible for:
//   - Writing viewport draw operations to a backend
//   - Placing the terminal cursor
//   - Flushing each frame and reporting flush failures
//
// Architecture:
//
// The renderer follows a layered design:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Viewport │ ScrollState │ Coordinator   │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	err := r.Render(coord.Frame(), coord.ScreenPosition())
package renderer
