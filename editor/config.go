package editor

import "github.com/iw2rmb/inkwell/buffer"

// Options configures an editing session.
type Options struct {
	// Limits; 0 means unlimited. MaxChars counts codepoints, newlines
	// included.
	MaxLines int
	MaxChars int

	// ReadOnly suppresses every mutating action; motion and selection still
	// work.
	ReadOnly bool

	// ScrollEnabled keeps the cursor row visible when the text is taller
	// than Height.
	ScrollEnabled bool

	Wrap  WrapMode
	Align Align

	// Logical size of the widget in shaper units. Width <= 0 disables
	// wrapping and alignment; Height <= 0 disables scrolling and paging
	// falls back to a single row.
	Width  float32
	Height float32

	// Attrs is the document style used where text carries no explicit span.
	Attrs buffer.Attrs

	// Clipboard backs copy and cut. Nil disables both.
	Clipboard Clipboard
}
