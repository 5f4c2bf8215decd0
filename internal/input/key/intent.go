package key

// Intent is what a key press asks the viewer to do.
type Intent uint8

const (
	// IntentNone leaves everything unchanged.
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentHome
	IntentEnd
	IntentPageUp
	IntentPageDown
	// IntentQuit ends the session.
	IntentQuit
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentHome:
		return "home"
	case IntentEnd:
		return "end"
	case IntentPageUp:
		return "page-up"
	case IntentPageDown:
		return "page-down"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsMovement returns true for intents that move the cursor.
func (i Intent) IsMovement() bool {
	return i >= IntentUp && i <= IntentPageDown
}

// Map translates a key event into an intent.
//
// Bindings: w/a/s/d and the arrow keys move, Home/End/PageUp/PageDown do
// what their names say, Ctrl-Q quits. Everything else is IntentNone.
func Map(ev Event) Intent {
	switch ev.Key {
	case KeyUp:
		return IntentUp
	case KeyDown:
		return IntentDown
	case KeyLeft:
		return IntentLeft
	case KeyRight:
		return IntentRight
	case KeyHome:
		return IntentHome
	case KeyEnd:
		return IntentEnd
	case KeyPageUp:
		return IntentPageUp
	case KeyPageDown:
		return IntentPageDown
	case KeyRune:
		return mapRune(ev.Rune, ev.Modifiers)
	default:
		return IntentNone
	}
}

func mapRune(r rune, mods Modifier) Intent {
	if mods.Has(ModCtrl) {
		if r == 'q' || r == 'Q' {
			return IntentQuit
		}
		return IntentNone
	}
	if mods.Has(ModAlt) || mods.Has(ModMeta) {
		return IntentNone
	}

	switch r {
	case 'w':
		return IntentUp
	case 'a':
		return IntentLeft
	case 's':
		return IntentDown
	case 'd':
		return IntentRight
	default:
		return IntentNone
	}
}
