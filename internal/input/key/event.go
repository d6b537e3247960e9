package key

import (
	"fmt"
	"strings"
)

// Event represents a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune reports whether this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar reports whether this is an unmodified printable ASCII
// character. Column arithmetic throughout the editing core is
// byte-oriented, so wider runes are not accepted as text input; splicing
// them at a byte column would corrupt the line on the next keystroke.
// Shift does not count as a modifier for characters since it changes the
// character itself.
func (e Event) IsChar() bool {
	return e.IsRune() && e.Rune >= ' ' && e.Rune <= '~' &&
		e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// IsCtrl reports whether this is Ctrl plus the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Modifiers.HasCtrl()
}

// IsEscape reports whether this is the Escape key.
func (e Event) IsEscape() bool { return e.Key == KeyEscape }

// IsEnter reports whether this is the Enter key.
func (e Event) IsEnter() bool { return e.Key == KeyEnter }

// IsBackspace reports whether this is Backspace.
func (e Event) IsBackspace() bool { return e.Key == KeyBackspace }

// IsTab reports whether this is Tab with no modifiers.
func (e Event) IsTab() bool { return e.Key == KeyTab && e.Modifiers == ModNone }

// String returns a canonical representation such as "a", "C-r" or "Enter".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			parts = append(parts, "Space")
		} else {
			parts = append(parts, string(e.Rune))
		}
	default:
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "-")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q}", e.Key.String(), e.Rune)
}
