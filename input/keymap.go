package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// CommandModifier is the platform's command key: ctrl on most systems,
// super on macOS. The host decides which one applies.
type CommandModifier uint8

const (
	CommandCtrl CommandModifier = iota
	CommandSuper
)

func (c CommandModifier) String() string {
	if c == CommandSuper {
		return "super"
	}
	return "ctrl"
}

// KeyMap defines the editor key bindings.
//
// Motion bindings are written without shift; holding shift on top of a
// motion chord extends the selection.
type KeyMap struct {
	Left, Right, Up, Down  key.Binding
	WordLeft, WordRight    key.Binding
	Home, End              key.Binding
	BufferStart, BufferEnd key.Binding
	PageUp, PageDown       key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Escape            key.Binding
	SelectAll         key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

// DefaultKeyMap returns the default bindings with "cmd" resolved to cmd.
func DefaultKeyMap(cmd CommandModifier) KeyMap {
	c := func(keys ...string) []string {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = strings.ReplaceAll(k, "cmd+", cmd.String()+"+")
		}
		return out
	}
	b := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(c(keys...)...), key.WithHelp(strings.ReplaceAll(help, "cmd", cmd.String()), desc))
	}
	return KeyMap{
		Left:  b("←", "left", "left"),
		Right: b("→", "right", "right"),
		Up:    b("↑", "up", "up"),
		Down:  b("↓", "down", "down"),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  b("alt+←", "word left", "alt+left", "ctrl+left"),
		WordRight: b("alt+→", "word right", "alt+right", "ctrl+right"),

		Home:        b("home", "line start", "home"),
		End:         b("end", "line end", "end"),
		BufferStart: b("cmd+home", "text start", "cmd+home", "cmd+up"),
		BufferEnd:   b("cmd+end", "text end", "cmd+end", "cmd+down"),
		PageUp:      b("pgup", "page up", "pgup"),
		PageDown:    b("pgdown", "page down", "pgdown"),

		Backspace: b("backspace", "delete left", "backspace", "ctrl+h"),
		Delete:    b("del", "delete right", "delete"),
		Enter:     b("enter", "newline", "enter"),
		Escape:    b("esc", "clear selection", "esc"),
		SelectAll: b("cmd+a", "select all", "cmd+a"),

		Undo: b("cmd+z", "undo", "cmd+z"),
		Redo: b("cmd+y", "redo", "cmd+y", "cmd+shift+z"),

		Copy:  b("cmd+c", "copy", "cmd+c"),
		Cut:   b("cmd+x", "cut", "cmd+x"),
		Paste: b("cmd+v", "paste", "cmd+v"),
	}
}

// ShortHelp returns bindings for a compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Copy, k.Paste, k.SelectAll}
}

// FullHelp returns every binding, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight},
		{k.Home, k.End, k.BufferStart, k.BufferEnd, k.PageUp, k.PageDown},
		{k.Backspace, k.Delete, k.Enter, k.Escape, k.SelectAll},
		{k.Undo, k.Redo, k.Copy, k.Cut, k.Paste},
	}
}
