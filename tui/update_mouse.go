package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/input"
)

// PointerEvent converts a terminal mouse message into a pointer event in
// screen cells, at the left edge of the cell and halfway down its row.
// Wheel events are not pointer events.
func PointerEvent(msg tea.MouseMsg) (input.PointerEvent, bool) {
	ev := input.PointerEvent{
		Pos: input.Point{X: float32(msg.X), Y: float32(msg.Y) + 0.5},
	}
	if msg.Shift {
		ev.Mods |= input.ModShift
	}
	if msg.Alt {
		ev.Mods |= input.ModAlt
	}
	if msg.Ctrl {
		ev.Mods |= input.ModCtrl
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		b, ok := button(msg.Button)
		if !ok {
			return input.PointerEvent{}, false
		}
		ev.Kind = input.PointerDown
		ev.Button = b
	case tea.MouseActionRelease:
		ev.Kind = input.PointerUp
		// Terminals without extended reporting do not say which button
		// was released.
		ev.Button = input.ButtonPrimary
		if b, ok := button(msg.Button); ok && b != input.ButtonNone {
			ev.Button = b
		}
	case tea.MouseActionMotion:
		ev.Kind = input.PointerMove
	default:
		return input.PointerEvent{}, false
	}
	return ev, true
}

func button(b tea.MouseButton) (input.Button, bool) {
	switch b { //nolint:exhaustive
	case tea.MouseButtonNone:
		return input.ButtonNone, true
	case tea.MouseButtonLeft:
		return input.ButtonPrimary, true
	case tea.MouseButtonRight:
		return input.ButtonSecondary, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	}
	return input.ButtonNone, false
}
