package editor

import (
	"github.com/iw2rmb/inkwell/buffer"
)

// Editor is a live editing session over a private copy of a buffer.
//
// Every change to text, cursor or selection goes through Action (or one of
// the explicit setters used by text transforms), and each visible change
// raises the redraw flag. The flag stays up until ClearRedraw.
type Editor struct {
	opt Options
	buf *buffer.Buffer

	cursor buffer.Cursor
	sel    buffer.Selection

	redraw bool

	// preferredX survives consecutive vertical motions.
	preferredX    float32
	hasPreferredX bool

	scroll int
}

// New starts a session on a copy of buf. The session owns the copy until the
// caller takes the lines back with Lines.
func New(buf *buffer.Buffer, opt Options) *Editor {
	var b *buffer.Buffer
	if buf == nil {
		b = buffer.New("", buffer.Attrs{})
	} else {
		b = buf.Clone()
	}
	return &Editor{
		opt:    opt,
		buf:    b,
		redraw: true,
	}
}

// Buffer returns the live buffer. Callers outside the editing pipeline must
// not mutate it.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Options() Options { return e.opt }

// SetSize updates the logical widget size used for wrapping and paging.
func (e *Editor) SetSize(width, height float32) {
	if e.opt.Width == width && e.opt.Height == height {
		return
	}
	e.opt.Width = width
	e.opt.Height = height
	e.redraw = true
}

// SetReadOnly toggles mutating actions.
func (e *Editor) SetReadOnly(v bool) { e.opt.ReadOnly = v }

func (e *Editor) Text() string { return e.buf.Text() }

// Lines returns a snapshot of the session's lines.
func (e *Editor) Lines() []buffer.Line { return e.buf.Lines() }

func (e *Editor) Cursor() buffer.Cursor { return e.cursor }

func (e *Editor) Selection() buffer.Selection { return e.sel }

// CursorOffset returns the cursor as a codepoint offset into Text.
func (e *Editor) CursorOffset() int {
	off, _ := e.buf.RuneOffset(e.cursor, buffer.OffsetClamp)
	return off
}

// SelectionRange returns the ordered selected range, if any.
func (e *Editor) SelectionRange() (buffer.Range, bool) { return e.sel.Range(e.cursor) }

// SelectedText returns the text covered by the selection.
func (e *Editor) SelectedText() string {
	r, ok := e.SelectionRange()
	if !ok {
		return ""
	}
	return e.buf.TextRange(r.Start, r.End)
}

// SetCursor moves the cursor without touching the selection.
func (e *Editor) SetCursor(c buffer.Cursor) {
	c = e.buf.ClampCursor(c)
	if c == e.cursor {
		return
	}
	e.cursor = c
	e.hasPreferredX = false
	e.redraw = true
}

// SetSelection replaces the selection. An anchor equal to the cursor
// collapses to no selection.
func (e *Editor) SetSelection(s buffer.Selection) {
	if a, ok := s.Anchor(); ok {
		s = buffer.Anchored(e.buf.ClampCursor(a))
	}
	s = s.CollapseIfEqual(e.cursor)
	if s == e.sel {
		return
	}
	e.sel = s
	e.redraw = true
}

// SetLines replaces the session text and clamps cursor and selection into it.
func (e *Editor) SetLines(lines []buffer.Line) {
	e.buf.SetLines(lines)
	e.cursor = e.buf.ClampCursor(e.cursor)
	if a, ok := e.sel.Anchor(); ok {
		e.sel = buffer.Anchored(e.buf.ClampCursor(a)).CollapseIfEqual(e.cursor)
	}
	e.hasPreferredX = false
	e.redraw = true
}

// SetText replaces the session text in the document style.
func (e *Editor) SetText(text string) {
	b := buffer.New(text, e.opt.Attrs)
	e.SetLines(b.Lines())
}

// Restore resets text and cursor from a history entry and clears the
// selection.
func (e *Editor) Restore(entry buffer.HistoryEntry) {
	e.sel = buffer.NoSelection
	e.SetLines(entry.Lines)
	e.cursor = e.buf.ClampCursor(entry.Cursor)
}

// Redraw reports whether something visible changed since ClearRedraw.
func (e *Editor) Redraw() bool { return e.redraw || e.buf.Dirty() }

// ClearRedraw is called by the renderer after it consumed a frame.
func (e *Editor) ClearRedraw() {
	e.redraw = false
	e.buf.ClearDirty()
}

// MarkRedraw forces the next frame to be drawn.
func (e *Editor) MarkRedraw() { e.redraw = true }

// Scroll returns the first visible row.
func (e *Editor) Scroll() int { return e.scroll }

// Layout lays the session text out with sh.
func (e *Editor) Layout(sh Shaper) Layout {
	return computeLayout(e.buf, sh, e.opt.Width, e.opt.Wrap, e.opt.Align)
}

// Action applies a and reports what it changed. Actions never fail: points
// outside the text clamp and edits at a boundary do nothing.
func (e *Editor) Action(sh Shaper, a Action) Effect {
	prevCursor, prevSel := e.cursor, e.sel
	prevScroll := e.scroll

	var text bool
	switch {
	case a.Kind.IsMotion():
		e.motion(sh, a)
	case a.Kind.IsEdit():
		text = e.edit(a)
	default:
		e.command(sh, a)
	}

	// A selection whose anchor landed back on the cursor is no selection.
	e.sel = e.sel.CollapseIfEqual(e.cursor)
	if !a.Kind.IsMotion() || (a.Kind != ActionUp && a.Kind != ActionDown && a.Kind != ActionPageUp && a.Kind != ActionPageDown) {
		e.hasPreferredX = false
	}
	e.follow(sh)

	eff := Effect{
		Text:   text,
		Cursor: e.cursor != prevCursor || e.sel != prevSel,
	}
	if eff.Changed() || e.scroll != prevScroll {
		e.redraw = true
	}
	return eff
}

func (e *Editor) command(sh Shaper, a Action) {
	switch a.Kind {
	case ActionClick:
		e.cursor = e.hit(sh, a.X, a.Y)
		e.sel = buffer.NoSelection
	case ActionDrag:
		if !e.sel.Active() {
			e.sel = buffer.Anchored(e.cursor)
		}
		e.cursor = e.hit(sh, a.X, a.Y)
	case ActionDoubleClick:
		e.selectRange(e.buf.WordAt(e.hit(sh, a.X, a.Y)))
	case ActionTripleClick:
		e.selectRange(e.buf.LineRange(e.hit(sh, a.X, a.Y).Line))
	case ActionSelectAll:
		e.selectRange(e.buf.All())
	case ActionEscape:
		e.sel = buffer.NoSelection
	case ActionCopy:
		e.copySelection()
	}
}

func (e *Editor) selectRange(r buffer.Range) {
	e.sel = buffer.Anchored(r.Start)
	e.cursor = r.End
}

func (e *Editor) hit(sh Shaper, x, y float32) buffer.Cursor {
	lay := e.Layout(sh)
	return lay.Hit(x, y+float32(e.scroll)*lay.LineHeight)
}

func (e *Editor) copySelection() {
	if e.opt.Clipboard == nil {
		return
	}
	if s := e.SelectedText(); s != "" {
		_ = e.opt.Clipboard.WriteText(s)
	}
}

// visibleRows is the number of rows that fit in the widget, at least one.
func (e *Editor) visibleRows(lay Layout) int {
	if e.opt.Height <= 0 {
		return 1
	}
	n := int(e.opt.Height / lay.LineHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// follow scrolls so the cursor row stays visible.
func (e *Editor) follow(sh Shaper) {
	if !e.opt.ScrollEnabled || e.opt.Height <= 0 {
		e.scroll = 0
		return
	}
	lay := e.Layout(sh)
	visible := e.visibleRows(lay)
	row := lay.RowOf(e.cursor)
	if row < e.scroll {
		e.scroll = row
	}
	if row >= e.scroll+visible {
		e.scroll = row - visible + 1
	}
	maxScroll := len(lay.Rows) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.scroll > maxScroll {
		e.scroll = maxScroll
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}
