package buffer

import "unicode/utf8"

// OffsetClampMode decides what conversions do with out-of-range input.
type OffsetClampMode uint8

const (
	// OffsetError rejects offsets outside the document and offsets inside a
	// grapheme cluster.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps into the document and rounds down to a cluster
	// boundary.
	OffsetClamp
)

// Document offsets count the newline between lines as one byte and one
// rune, matching Text.

// CursorFromByteOffset converts a document byte offset to a cursor.
func (b *Buffer) CursorFromByteOffset(off int, mode OffsetClampMode) (Cursor, bool) {
	return b.fromOffset(off, mode, func(s string) int { return len(s) })
}

// ByteOffset converts c to a document byte offset.
func (b *Buffer) ByteOffset(c Cursor, mode OffsetClampMode) (int, bool) {
	return b.toOffset(c, mode, func(s string) int { return len(s) })
}

// CursorFromRuneOffset converts a document codepoint offset to a cursor.
func (b *Buffer) CursorFromRuneOffset(off int, mode OffsetClampMode) (Cursor, bool) {
	return b.fromOffset(off, mode, utf8.RuneCountInString)
}

// RuneOffset converts c to a document codepoint offset.
func (b *Buffer) RuneOffset(c Cursor, mode OffsetClampMode) (int, bool) {
	return b.toOffset(c, mode, utf8.RuneCountInString)
}

func (b *Buffer) docLen(measure func(string) int) int {
	total := len(b.lines) - 1
	for _, l := range b.lines {
		total += measure(l.text)
	}
	return total
}

func (b *Buffer) fromOffset(off int, mode OffsetClampMode, measure func(string) int) (Cursor, bool) {
	max := b.docLen(measure)
	if off < 0 || off > max {
		if mode != OffsetClamp {
			return Cursor{}, false
		}
		off = clampInt(off, 0, max)
	}

	for i, l := range b.lines {
		n := measure(l.text)
		if off > n {
			off -= n + 1
			continue
		}
		idx := 0
		for _, cl := range clusters(l.text) {
			if off == 0 {
				break
			}
			w := measure(cl.text)
			if off < w {
				if mode != OffsetClamp {
					return Cursor{}, false
				}
				break
			}
			off -= w
			idx = cl.start + len(cl.text)
		}
		return Cursor{Line: i, Index: idx}, true
	}
	return b.End(), true
}

func (b *Buffer) toOffset(c Cursor, mode OffsetClampMode, measure func(string) int) (int, bool) {
	clamped := b.ClampCursor(c)
	if !SamePos(clamped, c) && mode != OffsetClamp {
		return 0, false
	}
	off := 0
	for i := 0; i < clamped.Line; i++ {
		off += measure(b.lines[i].text) + 1
	}
	return off + measure(b.lines[clamped.Line].text[:clamped.Index]), true
}
