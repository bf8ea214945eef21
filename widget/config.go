package widget

import (
	"time"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/input"
)

// Config describes one text widget.
type Config struct {
	ID uint64

	// Surface must name exactly one render surface.
	Surface       input.SurfaceOptions
	VerticalAlign input.VerticalAlign

	// Editor holds the session options. Width and Height are taken from
	// Surface.Size.
	Editor editor.Options

	// Password masks the text with PasswordGlyph (0 uses the default).
	Password      bool
	PasswordGlyph rune

	Placeholder      string
	PlaceholderAttrs buffer.Attrs

	HistoryLimit int
	Debounce     time.Duration
	ClickTimeout time.Duration

	// Command is the platform command modifier for key bindings. Keys, when
	// set, replaces the default bindings.
	Command input.CommandModifier
	Keys    *input.KeyMap

	// Paste reads the clipboard for paste requests; nil disables paste.
	Paste input.ReadFunc
}

// TextChanged is reported after a frame in which the widget's text changed.
type TextChanged struct {
	ID   uint64
	Text string
}
