// Package transform holds the display transforms that wrap an editing
// session: password masking and placeholder text.
//
// Both transforms rewrite the session's lines in place and remap the cursor
// and selection so that the session stays consistent with what is drawn.
package transform

import (
	"strings"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// DefaultGlyph masks password text when no glyph is configured.
const DefaultGlyph = '•'

// Session is the part of an editing session the transforms rewrite.
type Session interface {
	Lines() []buffer.Line
	SetLines(lines []buffer.Line)
	Cursor() buffer.Cursor
	SetCursor(c buffer.Cursor)
	Selection() buffer.Selection
	SetSelection(s buffer.Selection)
}

var _ Session = (*editor.Editor)(nil)

// Password substitutes every grapheme cluster of the session with a glyph
// between frames and keeps the real lines aside.
//
// Positions are carried across as cluster counts: a cursor after n clusters
// of real text sits after n glyphs of masked text and back. This is exact
// for text made of single-codepoint clusters. For combining sequences the
// count is still exact but a position inside a cluster rounds down to the
// cluster start.
type Password struct {
	glyph string

	hidden bool
	real   []buffer.Line
}

// NewPassword returns a password transform masking with glyph; 0 uses
// DefaultGlyph.
func NewPassword(glyph rune) *Password {
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	return &Password{glyph: string(glyph)}
}

func (p *Password) Glyph() string { return p.glyph }

// Hidden reports whether the session currently shows masked text.
func (p *Password) Hidden() bool { return p.hidden }

// Hide stores the real lines and replaces the session text with glyphs.
func (p *Password) Hide(s Session) {
	if p.hidden {
		return
	}
	p.real = s.Lines()
	cursor := s.Cursor()
	anchor, selected := s.Selection().Anchor()

	cursor = p.toMasked(p.real, cursor)
	if selected {
		anchor = p.toMasked(p.real, anchor)
	}
	s.SetSelection(buffer.NoSelection)
	s.SetLines(p.Mask(p.real))
	s.SetCursor(cursor)
	if selected {
		s.SetSelection(buffer.Anchored(anchor))
	}
	p.hidden = true
}

// Restore puts the real lines back and maps cursor and selection from glyph
// positions to real positions. Positions past the end of a line clamp to it.
func (p *Password) Restore(s Session) {
	if !p.hidden {
		return
	}
	cursor := p.toReal(p.real, s.Cursor())
	anchor, selected := s.Selection().Anchor()
	if selected {
		anchor = p.toReal(p.real, anchor)
	}
	s.SetSelection(buffer.NoSelection)
	s.SetLines(p.real)
	s.SetCursor(cursor)
	if selected {
		s.SetSelection(buffer.Anchored(anchor))
	}
	p.hidden = false
	p.real = nil
}

// RealText returns the real text while hidden.
func (p *Password) RealText() (string, bool) {
	if !p.hidden {
		return "", false
	}
	var sb strings.Builder
	for i, l := range p.real {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String(), true
}

// Mask returns lines with every cluster replaced by the glyph. Styles follow
// the clusters they covered.
func (p *Password) Mask(lines []buffer.Line) []buffer.Line {
	out := make([]buffer.Line, len(lines))
	g := len(p.glyph)
	for i, l := range lines {
		text := l.Text()
		spans := l.Spans()
		for j := range spans {
			spans[j].Start = grapheme.CountBefore(text, spans[j].Start) * g
			spans[j].End = grapheme.CountBefore(text, spans[j].End) * g
		}
		out[i] = buffer.NewLine(strings.Repeat(p.glyph, grapheme.Count(text)), spans...)
	}
	return out
}

func (p *Password) toMasked(real []buffer.Line, c buffer.Cursor) buffer.Cursor {
	if c.Line < 0 || c.Line >= len(real) {
		return c
	}
	c.Index = grapheme.CountBefore(real[c.Line].Text(), c.Index) * len(p.glyph)
	return c
}

func (p *Password) toReal(real []buffer.Line, c buffer.Cursor) buffer.Cursor {
	if len(real) == 0 {
		return buffer.Cursor{}
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line >= len(real) {
		c.Line = len(real) - 1
	}
	c.Index = grapheme.ByteOffset(real[c.Line].Text(), c.Index/len(p.glyph))
	return c
}

// Shaper measures every cluster as the glyph, so that hit-testing real text
// lands where the masked text was drawn.
func (p *Password) Shaper(inner editor.Shaper) editor.Shaper {
	return maskedShaper{inner: inner, glyph: p.glyph}
}

type maskedShaper struct {
	inner editor.Shaper
	glyph string
}

func (m maskedShaper) Advance(_ string, x float32) float32 { return m.inner.Advance(m.glyph, x) }

func (m maskedShaper) LineHeight() float32 { return m.inner.LineHeight() }
