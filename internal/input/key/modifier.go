package key

// Modifier is a bit set of modifier keys held during an event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl reports whether Ctrl is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta reports whether Meta/Command is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// With returns the set with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }
