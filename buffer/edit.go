package buffer

import "strings"

// ReplaceRange replaces the text between start and end with text, which may
// contain '\n', and returns the cursor placed after the inserted text.
//
// Inserted text takes attrs when non-nil, else it inherits the explicit style
// at the insertion point (see Line.AttrsAt), else it stays unstyled.
func (b *Buffer) ReplaceRange(start, end Cursor, text string) Cursor {
	return b.ReplaceRangeStyled(start, end, text, nil)
}

// ReplaceRangeStyled is ReplaceRange with an explicit style for the inserted
// text.
func (b *Buffer) ReplaceRangeStyled(start, end Cursor, text string, attrs *Attrs) Cursor {
	r := NormalizeRange(Range{Start: b.ClampCursor(start), End: b.ClampCursor(end)})
	s, e := r.Start, r.End

	if attrs == nil {
		if a, ok := b.lines[s.Line].AttrsAt(s.Index); ok {
			attrs = &a
		}
	}

	left, _ := b.lines[s.Line].split(s.Index)
	_, right := b.lines[e.Line].split(e.Index)

	parts := strings.Split(text, "\n")
	repl := make([]Line, 0, len(parts))
	for i, p := range parts {
		piece := styledLine(p, attrs)
		if i == 0 {
			piece = left.concat(piece)
		}
		if i == len(parts)-1 {
			piece = piece.concat(right)
		}
		repl = append(repl, piece)
	}

	next := Cursor{Line: s.Line + len(parts) - 1, Index: len(parts[len(parts)-1])}
	if len(parts) == 1 {
		next.Index += len(left.text)
	}

	out := make([]Line, 0, len(b.lines)-(e.Line-s.Line)+len(repl)-1)
	out = append(out, b.lines[:s.Line]...)
	out = append(out, repl...)
	out = append(out, b.lines[e.Line+1:]...)
	b.lines = out
	b.dirty = true
	return next
}

// TextRange returns the logical text between start and end.
func (b *Buffer) TextRange(start, end Cursor) string {
	r := NormalizeRange(Range{Start: b.ClampCursor(start), End: b.ClampCursor(end)})
	if r.IsEmpty() {
		return ""
	}
	s, e := r.Start, r.End
	if s.Line == e.Line {
		return b.lines[s.Line].text[s.Index:e.Index]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[s.Line].text[s.Index:])
	for i := s.Line + 1; i < e.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i].text)
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[e.Line].text[:e.Index])
	return sb.String()
}

// Restyle applies attrs to the range [start, end).
func (b *Buffer) Restyle(start, end Cursor, attrs Attrs) {
	r := NormalizeRange(Range{Start: b.ClampCursor(start), End: b.ClampCursor(end)})
	if r.IsEmpty() {
		return
	}
	for i := r.Start.Line; i <= r.End.Line; i++ {
		from, to := 0, len(b.lines[i].text)
		if i == r.Start.Line {
			from = r.Start.Index
		}
		if i == r.End.Line {
			to = r.End.Index
		}
		b.lines[i] = b.lines[i].withSpan(Span{Start: from, End: to, Attrs: attrs})
	}
	b.dirty = true
}
