package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/input"
)

// KeyEvent converts a terminal key message. ok is false for messages that
// carry nothing.
func KeyEvent(msg tea.KeyMsg) (input.KeyEvent, bool) {
	if msg.Paste {
		if len(msg.Runes) == 0 {
			return input.KeyEvent{}, false
		}
		return input.KeyEvent{Text: string(msg.Runes), Paste: true}, true
	}

	var mods input.Modifiers
	if msg.Alt {
		mods |= input.ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return input.KeyEvent{}, false
		}
		s := string(msg.Runes)
		return input.KeyEvent{Key: s, Text: s, Mods: mods}, true
	case tea.KeySpace:
		return input.KeyEvent{Key: "space", Text: " ", Mods: mods}, true
	case tea.KeyTab:
		return input.KeyEvent{Key: "tab", Text: "\t", Mods: mods}, true
	}

	ev := input.ParseChord(msg.String())
	if ev.Key == "" {
		return input.KeyEvent{}, false
	}
	return ev, true
}
