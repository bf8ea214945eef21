package transform

import (
	"strings"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// Placeholder shows hint text while the session is empty.
//
// While active the session holds the placeholder itself, the cursor is
// pinned to the start and nothing is selected. The first edit strips the
// placeholder back out of whatever the user produced.
type Placeholder struct {
	text  string
	attrs buffer.Attrs

	active bool
}

// NewPlaceholder returns a placeholder showing text in attrs. Only the first
// line of text is used.
func NewPlaceholder(text string, attrs buffer.Attrs) *Placeholder {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return &Placeholder{text: text, attrs: attrs}
}

func (p *Placeholder) Text() string { return p.text }

// Active reports whether the session is showing the placeholder.
func (p *Placeholder) Active() bool { return p.active }

// Reset forgets that the placeholder is shown, for when the session it was
// applied to goes away.
func (p *Placeholder) Reset() { p.active = false }

// Line returns the placeholder as a styled line.
func (p *Placeholder) Line() buffer.Line {
	return buffer.NewLine(p.text, buffer.Span{Start: 0, End: len(p.text), Attrs: p.attrs})
}

// Apply shows the placeholder when the session is empty and keeps the cursor
// pinned while it is shown. A session whose text was replaced underneath an
// active placeholder, by undo for example, deactivates it.
func (p *Placeholder) Apply(s Session) {
	if p.text == "" {
		p.active = false
		return
	}
	lines := s.Lines()
	if p.active {
		if len(lines) == 1 && lines[0].Text() == p.text {
			p.pin(s)
			return
		}
		p.active = false
	}
	if len(lines) == 1 && lines[0].Text() == "" {
		s.SetLines([]buffer.Line{p.Line()})
		p.active = true
		p.pin(s)
	}
}

func (p *Placeholder) pin(s Session) {
	s.SetSelection(buffer.NoSelection)
	s.SetCursor(buffer.Cursor{})
}

// Clear takes the placeholder out of the session ahead of an insertion, so
// the inserted text is measured against an empty document.
func (p *Placeholder) Clear(s Session) {
	if !p.active {
		return
	}
	p.active = false
	s.SetSelection(buffer.NoSelection)
	s.SetLines([]buffer.Line{buffer.NewLine("")})
	s.SetCursor(buffer.Cursor{})
}

// TextChanged strips the placeholder after an edit made while it was shown.
// The remaining text takes the document style def and the cursor moves to
// its end. Deleting only the first cluster of the placeholder leaves it in
// place.
func (p *Placeholder) TextChanged(s Session, def buffer.Attrs) {
	if !p.active {
		return
	}
	lines := s.Lines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text()
	}

	if len(texts) == 1 && texts[0] == p.text[grapheme.Next(p.text, 0):] {
		s.SetLines([]buffer.Line{p.Line()})
		p.pin(s)
		return
	}

	stripped := false
	for i, t := range texts {
		if !stripped && strings.Contains(t, p.text) {
			texts[i] = strings.Replace(t, p.text, "", 1)
			stripped = true
		}
	}
	text := strings.Join(texts, "\n")
	p.active = false

	b := buffer.New(text, def)
	s.SetSelection(buffer.NoSelection)
	s.SetLines(b.Lines())
	s.SetCursor(b.End())
}
