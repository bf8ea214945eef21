// Package input turns raw pointer and keyboard events into editor actions.
//
// It owns everything between the host and the editing session: mapping
// pointer positions from the render surface into buffer-local coordinates,
// the hover/drag state machine, click multiplicity, key bindings, the
// asynchronous paste queue and the debounced history recorder.
package input

import "strings"

// Point is a position in some coordinate space; the space is implied by
// where the point is used.
type Point struct {
	X, Y float32
}

// Event is a pointer or key event delivered to a widget.
type Event interface {
	isEvent()
}

// PointerKind is what happened to the pointer.
type PointerKind uint8

const (
	PointerOver PointerKind = iota
	PointerOut
	PointerDown
	PointerMove
	PointerUp
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer event in surface coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Pos    Point
	Button Button
	Mods   Modifiers
}

func (PointerEvent) isEvent() {}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModSuper
	ModShift
)

func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

// KeyEvent is a key press. Key is a key name ("left", "enter", "pgup") or
// the typed text for character keys; Text carries what the key would insert.
// A Paste event carries the pasted text in Text and no Key.
type KeyEvent struct {
	Key   string
	Text  string
	Mods  Modifiers
	Paste bool
}

func (KeyEvent) isEvent() {}

// String returns the canonical chord, e.g. "ctrl+shift+left". Modifier order
// is ctrl, alt, super, shift.
func (k KeyEvent) String() string {
	var sb strings.Builder
	for _, m := range []struct {
		mod  Modifiers
		name string
	}{
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
		{ModShift, "shift"},
	} {
		if k.Mods.Has(m.mod) {
			sb.WriteString(m.name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(k.Key)
	return sb.String()
}

// without returns k with mods cleared.
func (k KeyEvent) without(mods Modifiers) KeyEvent {
	k.Mods &^= mods
	return k
}

// ParseChord parses a chord in the form produced by KeyEvent.String. Modifier
// order is not significant; "cmd" is not understood here.
func ParseChord(s string) KeyEvent {
	var k KeyEvent
	for {
		i := strings.IndexByte(s, '+')
		// A trailing '+' is the key itself, as in "ctrl++".
		if i <= 0 || i == len(s)-1 {
			break
		}
		switch s[:i] {
		case "ctrl":
			k.Mods |= ModCtrl
		case "alt":
			k.Mods |= ModAlt
		case "super", "meta":
			k.Mods |= ModSuper
		case "shift":
			k.Mods |= ModShift
		default:
			k.Key = s
			return k
		}
		s = s[i+1:]
	}
	k.Key = s
	return k
}
