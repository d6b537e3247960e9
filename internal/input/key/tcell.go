package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event into an Event.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Modifiers: mods}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Modifiers: mods}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Modifiers: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Modifiers: mods}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Modifiers: mods}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Modifiers: mods}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Modifiers: mods}
	}

	// Control letters arrive as dedicated tcell keys. Tab, Enter, Escape
	// and Backspace alias onto this range and were handled above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Event{
			Key:       KeyRune,
			Rune:      rune('a' + int(k) - int(tcell.KeyCtrlA)),
			Modifiers: mods.With(ModCtrl),
		}
	}

	return Event{Key: KeyNone, Modifiers: mods}
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
