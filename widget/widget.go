// Package widget ties a committed buffer, its editing session, the input
// translator and the display transforms into one text widget driven by a
// per-frame pipeline.
package widget

import (
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/input"
	"github.com/iw2rmb/inkwell/transform"
)

// state is either committed (no session, the buffer is the truth) or live
// (a session owns a private copy of the text).
type state interface {
	isState()
}

type committed struct {
	buf *buffer.Buffer
}

type live struct {
	ed      *editor.Editor
	rec     *input.Recorder
	pending []input.RequestID
}

func (*committed) isState() {}
func (*live) isState()      {}

// Widget is a text widget.
type Widget struct {
	cfg Config
	st  state

	tr          *input.Translator
	password    *transform.Password
	placeholder *transform.Placeholder
	paste       *input.PasteQueue

	// OnChange is called at the end of a frame whose text differs from the
	// previous frame's.
	OnChange func(TextChanged)

	lastText string
	redraw   bool
}

// New creates an unfocused widget holding text. It fails when the surface
// configuration does not name exactly one surface.
func New(cfg Config, text string) (*Widget, error) {
	surface, err := input.NewSurface(cfg.Surface)
	if err != nil {
		return nil, err
	}
	keys := input.DefaultKeyMap(cfg.Command)
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	if size, err := surface.Size(); err == nil {
		cfg.Editor.Width, cfg.Editor.Height = size.X, size.Y
	}
	w := &Widget{
		cfg:      cfg,
		st:       &committed{buf: buffer.New(text, cfg.Editor.Attrs)},
		tr:       input.NewTranslator(cfg.ID, surface, cfg.VerticalAlign, keys, cfg.ClickTimeout),
		lastText: text,
		redraw:   true,
	}
	if cfg.Password {
		w.password = transform.NewPassword(cfg.PasswordGlyph)
		// Masked fields neither copy to nor paste from the clipboard.
		w.cfg.Editor.Clipboard = nil
		w.cfg.Paste = nil
	}
	if cfg.Placeholder != "" {
		w.placeholder = transform.NewPlaceholder(cfg.Placeholder, cfg.PlaceholderAttrs)
	}
	if cfg.Paste != nil && !cfg.Password {
		w.paste = input.NewPasteQueue(cfg.Paste)
	}
	return w, nil
}

func (w *Widget) ID() uint64 { return w.cfg.ID }

func (w *Widget) Config() Config { return w.cfg }

// Translator exposes the widget's input state, for hosts that route events.
func (w *Widget) Translator() *input.Translator { return w.tr }

// Focused reports whether an editing session is live.
func (w *Widget) Focused() bool {
	_, ok := w.st.(*live)
	return ok
}

// Focus starts an editing session on a copy of the committed text, with the
// cursor at its end.
func (w *Widget) Focus() {
	c, ok := w.st.(*committed)
	if !ok {
		return
	}
	ed := editor.New(c.buf, w.cfg.Editor)
	ed.SetCursor(c.buf.End())
	rec := input.NewRecorder(w.cfg.HistoryLimit, w.cfg.Debounce)
	rec.Begin(ed.Lines(), ed.Cursor())
	w.st = &live{ed: ed, rec: rec}
	w.conceal(ed)
	log.Debug().Uint64("widget", w.cfg.ID).Msg("focus")
}

// Unfocus ends the session and writes its text back to the committed
// buffer.
func (w *Widget) Unfocus() {
	l, ok := w.st.(*live)
	if !ok {
		return
	}
	w.reveal(l.ed)
	lines := l.ed.Lines()
	if w.placeholder != nil && w.placeholder.Active() {
		lines = nil
		w.placeholder.Reset()
	}
	if w.paste != nil {
		for _, id := range l.pending {
			w.paste.Cancel(id)
		}
	}
	buf := buffer.New("", w.cfg.Editor.Attrs)
	buf.SetLines(lines)
	w.st = &committed{buf: buf}
	w.redraw = true
	log.Debug().Uint64("widget", w.cfg.ID).Msg("unfocus")
}

// Editor returns the live session, if focused.
func (w *Widget) Editor() (*editor.Editor, bool) {
	l, ok := w.st.(*live)
	if !ok {
		return nil, false
	}
	return l.ed, true
}

// History returns the session's undo history, if focused.
func (w *Widget) History() (*buffer.History, bool) {
	l, ok := w.st.(*live)
	if !ok {
		return nil, false
	}
	return l.rec.History(), true
}

// Text returns the real text: never the placeholder and never the mask.
func (w *Widget) Text() string {
	switch s := w.st.(type) {
	case *committed:
		return s.buf.Text()
	case *live:
		if w.placeholder != nil && w.placeholder.Active() {
			return ""
		}
		if w.password != nil {
			if text, ok := w.password.RealText(); ok {
				return text
			}
		}
		return s.ed.Text()
	}
	return ""
}

// SetText replaces the text. Host-initiated changes are not reported through
// OnChange.
func (w *Widget) SetText(text string) {
	switch s := w.st.(type) {
	case *committed:
		s.buf.SetText(text, w.cfg.Editor.Attrs)
	case *live:
		w.reveal(s.ed)
		s.ed.SetText(text)
		s.ed.SetCursor(s.ed.Buffer().End())
		if w.placeholder != nil && w.placeholder.Active() {
			w.placeholder.TextChanged(s.ed, w.cfg.Editor.Attrs)
		}
		s.rec.Begin(s.ed.Lines(), s.ed.Cursor())
		w.conceal(s.ed)
	}
	w.lastText = w.Text()
	w.redraw = true
}

// Lines returns what should be drawn: the session's lines when focused,
// else the committed text with placeholder and mask applied.
func (w *Widget) Lines() []buffer.Line {
	switch s := w.st.(type) {
	case *live:
		return s.ed.Lines()
	case *committed:
		if w.placeholder != nil && s.buf.IsEmpty() {
			return []buffer.Line{w.placeholder.Line()}
		}
		if w.password != nil {
			return w.password.Mask(s.buf.Lines())
		}
		return s.buf.Lines()
	}
	return nil
}

// Layout lays out the drawn lines.
func (w *Widget) Layout(sh editor.Shaper) editor.Layout {
	if l, ok := w.st.(*live); ok {
		return l.ed.Layout(sh)
	}
	b := buffer.New("", buffer.Attrs{})
	b.SetLines(w.Lines())
	return editor.LayoutBuffer(b, sh, w.cfg.Editor)
}

// Resize updates the logical size of the widget.
func (w *Widget) Resize(width, height float32) {
	w.tr.Surface.Resize(input.Point{X: width, Y: height})
	w.cfg.Editor.Width, w.cfg.Editor.Height = width, height
	if l, ok := w.st.(*live); ok {
		l.ed.SetSize(width, height)
	}
	w.redraw = true
}

// Redraw reports whether the widget needs to be drawn again.
func (w *Widget) Redraw() bool {
	switch s := w.st.(type) {
	case *live:
		return w.redraw || s.ed.Redraw()
	case *committed:
		return w.redraw || s.buf.Dirty()
	}
	return w.redraw
}

// ClearRedraw is called by the renderer after drawing.
func (w *Widget) ClearRedraw() {
	w.redraw = false
	switch s := w.st.(type) {
	case *live:
		s.ed.ClearRedraw()
	case *committed:
		s.buf.ClearDirty()
	}
}

// conceal applies the display transforms at the end of a frame.
func (w *Widget) conceal(ed *editor.Editor) {
	if w.placeholder != nil {
		w.placeholder.Apply(ed)
	}
	if w.password != nil && (w.placeholder == nil || !w.placeholder.Active()) {
		w.password.Hide(ed)
	}
}

// reveal undoes the password mask at the start of a frame.
func (w *Widget) reveal(ed *editor.Editor) {
	if w.password != nil {
		w.password.Restore(ed)
	}
}
