package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is the committed, styled document of a widget.
//
// It always holds at least one line. The dirty flag is raised by every
// mutation and cleared by whoever consumes the buffer for rendering.
type Buffer struct {
	lines []Line
	dirty bool
}

// New returns a buffer holding text in one uniform style. Pass a zero Attrs
// to leave the text unstyled (document style).
func New(text string, attrs Attrs) *Buffer {
	b := &Buffer{}
	b.SetText(text, attrs)
	return b
}

// SetText replaces the whole document with text split on '\n'.
func (b *Buffer) SetText(text string, attrs Attrs) {
	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	var a *Attrs
	if attrs != (Attrs{}) {
		a = &attrs
	}
	for _, p := range parts {
		lines = append(lines, styledLine(p, a))
	}
	b.lines = lines
	b.dirty = true
}

// SetRichText replaces the document with the concatenation of spans. Spans
// crossing a newline are split at it; empty pieces carry no style.
func (b *Buffer) SetRichText(spans []TextSpan) {
	lines := []Line{{}}
	for _, s := range spans {
		parts := strings.Split(s.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				lines = append(lines, Line{})
			}
			if p == "" {
				continue
			}
			cur := &lines[len(lines)-1]
			start := len(cur.text)
			cur.text += p
			cur.spans = append(cur.spans, Span{Start: start, End: start + len(p), Attrs: s.Attrs})
		}
	}
	b.lines = lines
	b.dirty = true
}

// Text returns the logical text: lines joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.text)
	}
	return sb.String()
}

// TextSpans returns every line as gap-free styled runs; see Line.Segments.
func (b *Buffer) TextSpans(def Attrs) [][]TextSpan {
	out := make([][]TextSpan, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Segments(def)
	}
	return out
}

// IsEmpty reports whether the logical text is "".
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0].text == ""
}

// CharCount returns the number of codepoints in the logical text, newlines
// included.
func (b *Buffer) CharCount() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += utf8.RuneCountInString(l.text)
	}
	return n
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line i, clamped into range.
func (b *Buffer) Line(i int) Line {
	return b.lines[clampInt(i, 0, len(b.lines)-1)]
}

// Lines returns a snapshot of the lines. Lines are immutable values, so the
// snapshot stays valid across later edits.
func (b *Buffer) Lines() []Line {
	return append([]Line(nil), b.lines...)
}

// SetLines replaces the document with lines. An empty slice yields one empty
// line.
func (b *Buffer) SetLines(lines []Line) {
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	b.lines = append([]Line(nil), lines...)
	b.dirty = true
}

// Clone returns an independent copy of b, dirty flag included.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{lines: b.Lines(), dirty: b.dirty}
}

func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) MarkDirty() { b.dirty = true }

func (b *Buffer) ClearDirty() { b.dirty = false }

// ClampCursor clamps c into the document and snaps it to a grapheme boundary.
func (b *Buffer) ClampCursor(c Cursor) Cursor {
	c.Line = clampInt(c.Line, 0, len(b.lines)-1)
	text := b.lines[c.Line].text
	c.Index = floorBoundary(text, clampInt(c.Index, 0, len(text)))
	return c
}

// End returns the cursor at the end of the document.
func (b *Buffer) End() Cursor {
	last := len(b.lines) - 1
	return Cursor{Line: last, Index: len(b.lines[last].text)}
}
