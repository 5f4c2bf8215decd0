package app

import (
	"github.com/dshills/peek/internal/input/key"
	"github.com/dshills/peek/internal/renderer/backend"
)

var specialKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyInsert:    key.KeyInsert,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

// translateKey converts a backend key event into the input layer's key
// identity. Ctrl-letter keys become the letter with ModCtrl.
func translateKey(ev backend.Event) (key.Event, bool) {
	mods := translateMods(ev.Mod)

	switch {
	case ev.Key == backend.KeyRune:
		return key.NewRuneEvent(ev.Rune, mods), true
	case ev.Key.IsCtrl():
		return key.NewRuneEvent(ev.Key.CtrlRune(), mods.With(key.ModCtrl)), true
	}

	k, ok := specialKeys[ev.Key]
	if !ok {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(k, mods), true
}

func translateMods(m backend.ModMask) key.Modifier {
	var mods key.Modifier
	if m.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if m.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if m.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
