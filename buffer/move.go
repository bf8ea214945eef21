package buffer

import "github.com/iw2rmb/inkwell/internal/grapheme"

// Motions in this file are logical: they know lines and grapheme clusters but
// nothing about soft wrapping. Visual motions live in the editor.

func floorBoundary(text string, idx int) int { return grapheme.Floor(text, idx) }

// PrevGrapheme moves one cluster left, crossing to the end of the previous
// line at a line start.
func (b *Buffer) PrevGrapheme(c Cursor) Cursor {
	c = b.ClampCursor(c)
	if c.Index > 0 {
		return Cursor{Line: c.Line, Index: grapheme.Prev(b.lines[c.Line].text, c.Index)}
	}
	if c.Line == 0 {
		return c
	}
	return Cursor{Line: c.Line - 1, Index: len(b.lines[c.Line-1].text)}
}

// NextGrapheme moves one cluster right, crossing to the start of the next
// line at a line end.
func (b *Buffer) NextGrapheme(c Cursor) Cursor {
	c = b.ClampCursor(c)
	text := b.lines[c.Line].text
	if c.Index < len(text) {
		return Cursor{Line: c.Line, Index: grapheme.Next(text, c.Index)}
	}
	if c.Line == len(b.lines)-1 {
		return c
	}
	return Cursor{Line: c.Line + 1}
}

// PrevWord moves to the start of the word left of c. At a line start it
// behaves like PrevGrapheme.
func (b *Buffer) PrevWord(c Cursor) Cursor {
	c = b.ClampCursor(c)
	if c.Index == 0 {
		return b.PrevGrapheme(c)
	}
	cl := clusters(b.lines[c.Line].text)
	i := clusterAt(cl, c.Index)
	for i > 0 && !grapheme.IsWord(cl[i-1].text) {
		i--
	}
	for i > 0 && grapheme.IsWord(cl[i-1].text) {
		i--
	}
	return Cursor{Line: c.Line, Index: clusterStart(cl, i)}
}

// NextWord moves to the end of the word right of c. At a line end it behaves
// like NextGrapheme.
func (b *Buffer) NextWord(c Cursor) Cursor {
	c = b.ClampCursor(c)
	text := b.lines[c.Line].text
	if c.Index == len(text) {
		return b.NextGrapheme(c)
	}
	cl := clusters(text)
	i := clusterAt(cl, c.Index)
	for i < len(cl) && !grapheme.IsWord(cl[i].text) {
		i++
	}
	for i < len(cl) && grapheme.IsWord(cl[i].text) {
		i++
	}
	return Cursor{Line: c.Line, Index: clusterStart(cl, i)}
}

// WordAt returns the range of the word, whitespace run or punctuation
// cluster under c.
func (b *Buffer) WordAt(c Cursor) Range {
	c = b.ClampCursor(c)
	text := b.lines[c.Line].text
	cl := clusters(text)
	if len(cl) == 0 {
		return Range{Start: c, End: c}
	}
	i := clusterAt(cl, c.Index)
	if i == len(cl) {
		i--
	}
	class := classOf(cl[i].text)
	start, end := i, i+1
	if class != classPunct {
		for start > 0 && classOf(cl[start-1].text) == class {
			start--
		}
		for end < len(cl) && classOf(cl[end].text) == class {
			end++
		}
	}
	return Range{
		Start: Cursor{Line: c.Line, Index: clusterStart(cl, start)},
		End:   Cursor{Line: c.Line, Index: clusterStart(cl, end), Affinity: After},
	}
}

// LineRange returns the range covering line i.
func (b *Buffer) LineRange(i int) Range {
	i = clampInt(i, 0, len(b.lines)-1)
	return Range{
		Start: Cursor{Line: i},
		End:   Cursor{Line: i, Index: len(b.lines[i].text), Affinity: After},
	}
}

// All returns the range covering the whole document.
func (b *Buffer) All() Range {
	end := b.End()
	end.Affinity = After
	return Range{Start: Cursor{}, End: end}
}

type cluster struct {
	start int
	text  string
}

func clusters(text string) []cluster {
	parts := grapheme.Split(text)
	out := make([]cluster, len(parts))
	off := 0
	for i, p := range parts {
		out[i] = cluster{start: off, text: p}
		off += len(p)
	}
	return out
}

// clusterAt returns the index of the cluster starting at idx, or len(cl).
func clusterAt(cl []cluster, idx int) int {
	for i, c := range cl {
		if c.start >= idx {
			return i
		}
	}
	return len(cl)
}

func clusterStart(cl []cluster, i int) int {
	if i >= len(cl) {
		if len(cl) == 0 {
			return 0
		}
		last := cl[len(cl)-1]
		return last.start + len(last.text)
	}
	return cl[i].start
}

type charClass uint8

const (
	classWord charClass = iota
	classSpace
	classPunct
)

func classOf(s string) charClass {
	switch {
	case grapheme.IsSpace(s):
		return classSpace
	case grapheme.IsPunct(s):
		return classPunct
	default:
		return classWord
	}
}
