package buffer

// Span styles the half-open byte range [Start, End) of a line.
type Span struct {
	Start int
	End   int
	Attrs Attrs
}

// Line is one logical line of text plus its explicit style spans.
//
// Spans are sorted, non-overlapping and non-empty. Bytes not covered by a
// span take the document style when the line is read back.
type Line struct {
	text  string
	spans []Span
}

// NewLine builds a line from text and spans. Spans are clipped to the text,
// empty spans are dropped and overlaps are resolved in favor of later spans.
func NewLine(text string, spans ...Span) Line {
	l := Line{text: text}
	for _, s := range spans {
		l = l.withSpan(s)
	}
	return l
}

func styledLine(text string, a *Attrs) Line {
	if text == "" || a == nil {
		return Line{text: text}
	}
	return Line{text: text, spans: []Span{{Start: 0, End: len(text), Attrs: *a}}}
}

func (l Line) Text() string { return l.text }

func (l Line) Len() int { return len(l.text) }

// Spans returns a copy of the explicit spans.
func (l Line) Spans() []Span {
	return append([]Span(nil), l.spans...)
}

// Segments returns the line as gap-free styled runs, filling unstyled bytes
// with def. A line with no explicit spans yields exactly one run.
func (l Line) Segments(def Attrs) []TextSpan {
	if len(l.spans) == 0 {
		return []TextSpan{{Text: l.text, Attrs: def}}
	}
	out := make([]TextSpan, 0, 2*len(l.spans)+1)
	pos := 0
	for _, s := range l.spans {
		if s.Start > pos {
			out = append(out, TextSpan{Text: l.text[pos:s.Start], Attrs: def})
		}
		out = append(out, TextSpan{Text: l.text[s.Start:s.End], Attrs: s.Attrs})
		pos = s.End
	}
	if pos < len(l.text) {
		out = append(out, TextSpan{Text: l.text[pos:], Attrs: def})
	}
	return out
}

// AttrsAt returns the explicit style that text inserted at idx inherits: the
// span covering the byte before idx, else the span starting at idx.
func (l Line) AttrsAt(idx int) (Attrs, bool) {
	for _, s := range l.spans {
		if idx > s.Start && idx <= s.End {
			return s.Attrs, true
		}
	}
	for _, s := range l.spans {
		if s.Start == idx {
			return s.Attrs, true
		}
	}
	return Attrs{}, false
}

// split cuts the line at byte idx.
func (l Line) split(idx int) (Line, Line) {
	idx = clampInt(idx, 0, len(l.text))
	left := Line{text: l.text[:idx]}
	right := Line{text: l.text[idx:]}
	for _, s := range l.spans {
		if s.Start < idx {
			left.spans = append(left.spans, Span{Start: s.Start, End: min(s.End, idx), Attrs: s.Attrs})
		}
		if s.End > idx {
			right.spans = append(right.spans, Span{Start: max(s.Start, idx) - idx, End: s.End - idx, Attrs: s.Attrs})
		}
	}
	return left, right
}

// concat appends r to l, merging equal spans that meet at the seam.
func (l Line) concat(r Line) Line {
	off := len(l.text)
	out := Line{text: l.text + r.text}
	if len(l.spans)+len(r.spans) > 0 {
		out.spans = make([]Span, 0, len(l.spans)+len(r.spans))
	}
	out.spans = append(out.spans, l.spans...)
	for i, s := range r.spans {
		s.Start += off
		s.End += off
		if i == 0 && len(out.spans) > 0 {
			last := &out.spans[len(out.spans)-1]
			if last.End == s.Start && last.Attrs == s.Attrs {
				last.End = s.End
				continue
			}
		}
		out.spans = append(out.spans, s)
	}
	return out
}

// withSpan overlays s on the line and returns the result.
func (l Line) withSpan(s Span) Line {
	s.Start = clampInt(s.Start, 0, len(l.text))
	s.End = clampInt(s.End, 0, len(l.text))
	if s.End <= s.Start {
		return l
	}
	out := Line{text: l.text, spans: make([]Span, 0, len(l.spans)+2)}
	inserted := false
	for _, o := range l.spans {
		if o.End <= s.Start || o.Start >= s.End {
			if !inserted && o.Start >= s.End {
				out.spans = append(out.spans, s)
				inserted = true
			}
			out.spans = append(out.spans, o)
			continue
		}
		if o.Start < s.Start {
			out.spans = append(out.spans, Span{Start: o.Start, End: s.Start, Attrs: o.Attrs})
		}
		if !inserted {
			out.spans = append(out.spans, s)
			inserted = true
		}
		if o.End > s.End {
			out.spans = append(out.spans, Span{Start: s.End, End: o.End, Attrs: o.Attrs})
		}
	}
	if !inserted {
		out.spans = append(out.spans, s)
	}
	return out
}
