package input

import "github.com/rs/zerolog/log"

// DragPhase is the pointer interaction state of one widget.
type DragPhase uint8

const (
	DragIdle DragPhase = iota
	DragHovering
	DragDragging
)

func (p DragPhase) String() string {
	switch p {
	case DragHovering:
		return "hovering"
	case DragDragging:
		return "dragging"
	}
	return "idle"
}

// DragEvent drives DragState.
type DragEvent uint8

const (
	HoverStart DragEvent = iota
	HoverEnd
	DragStart
	Drag
	DragEnd
)

func (e DragEvent) String() string {
	return [...]string{"hover-start", "hover-end", "drag-start", "drag", "drag-end"}[e]
}

// DragState is the Idle → Hovering → Dragging → Idle machine.
//
// Events that make no sense in the current phase are logged and ignored so
// that a lost event can never leave the widget stuck in a drag.
type DragState struct {
	phase   DragPhase
	initial Point
}

func (d DragState) Phase() DragPhase { return d.phase }

// Initial is where the current drag started.
func (d DragState) Initial() (Point, bool) {
	return d.initial, d.phase == DragDragging
}

// Handle applies ev at p and reports whether it was accepted.
func (d *DragState) Handle(ev DragEvent, p Point) bool {
	switch ev {
	case HoverStart:
		if d.phase == DragIdle {
			d.phase = DragHovering
		}
		return true
	case HoverEnd:
		if d.phase == DragHovering {
			d.phase = DragIdle
		}
		// Leaving the widget mid-drag keeps the drag alive.
		return true
	case DragStart:
		if d.phase == DragDragging {
			break
		}
		d.phase = DragDragging
		d.initial = p
		return true
	case Drag, DragEnd:
		if d.phase != DragDragging {
			break
		}
		if ev == DragEnd {
			d.phase = DragIdle
			d.initial = Point{}
		}
		return true
	}
	log.Warn().
		Str("event", ev.String()).
		Str("phase", d.phase.String()).
		Msg("ignoring pointer event in invalid drag phase")
	return false
}
