package editor

import (
	"github.com/chewxy/math32"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// WrapMode controls how long logical lines are broken into visual rows.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGlyph
)

// Align is the horizontal alignment of each visual row within the widget.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustified
	AlignEnd
)

type glyph struct {
	start, end int // byte range in the logical line
	x, w       float32
}

// Row is one visual row of a logical line.
type Row struct {
	Line       int
	Start, End int     // byte range in the logical line
	X          float32 // alignment offset of the row
	Width      float32

	glyphs []glyph
}

// Layout is the visual arrangement of a buffer for one shaping context.
type Layout struct {
	Rows       []Row
	LineHeight float32

	// firstRow[i] is the index of the first row of logical line i.
	firstRow []int
}

// LayoutBuffer lays b out the way a session with opt would. Hosts use it to
// draw text that has no live session.
func LayoutBuffer(b *buffer.Buffer, sh Shaper, opt Options) Layout {
	return computeLayout(b, sh, opt.Width, opt.Wrap, opt.Align)
}

func computeLayout(b *buffer.Buffer, sh Shaper, width float32, wrap WrapMode, align Align) Layout {
	lay := Layout{LineHeight: sh.LineHeight(), firstRow: make([]int, b.LineCount())}
	if lay.LineHeight <= 0 {
		lay.LineHeight = 1
	}
	for i := 0; i < b.LineCount(); i++ {
		lay.firstRow[i] = len(lay.Rows)
		lay.Rows = append(lay.Rows, wrapLine(i, b.Line(i).Text(), sh, width, wrap)...)
	}
	for i := range lay.Rows {
		row := &lay.Rows[i]
		if align == AlignJustified && !lay.isLineEnd(i) {
			justify(row, b.Line(row.Line).Text(), width)
			continue
		}
		row.X = alignOffset(align, width, row.Width)
	}
	return lay
}

// justify widens the interior spaces of a wrapped row so that it fills
// width. Trailing spaces keep their advance; rows without interior spaces
// stay left aligned.
func justify(row *Row, text string, width float32) {
	extra := width - row.Width
	if extra <= 0 || len(row.glyphs) == 0 {
		return
	}
	isSpace := func(g glyph) bool { return grapheme.IsSpace(text[g.start:g.end]) }

	first, last := 0, len(row.glyphs)-1
	for first <= last && isSpace(row.glyphs[first]) {
		first++
	}
	for last >= first && isSpace(row.glyphs[last]) {
		last--
	}
	var gaps []int
	for i := first + 1; i < last; i++ {
		if isSpace(row.glyphs[i]) {
			gaps = append(gaps, i)
		}
	}
	if len(gaps) == 0 {
		return
	}

	// Gap k gets floor(extra*(k+1)/n) - floor(extra*k/n) so that whole-cell
	// advances stay whole.
	n := float32(len(gaps))
	for k, gi := range gaps {
		lo := math32.Floor(extra * float32(k) / n)
		hi := math32.Floor(extra * float32(k+1) / n)
		row.glyphs[gi].w += hi - lo
	}
	var x float32
	for i := range row.glyphs {
		row.glyphs[i].x = x
		x += row.glyphs[i].w
	}
	row.Width = x
}

// Advance returns the advance the layout gave the glyph starting at byte
// start of the row's line.
func (r Row) Advance(start int) (float32, bool) {
	for _, g := range r.glyphs {
		if g.start == start {
			return g.w, true
		}
		if g.start > start {
			break
		}
	}
	return 0, false
}

func wrapLine(line int, text string, sh Shaper, width float32, wrap WrapMode) []Row {
	parts := grapheme.Split(text)
	if len(parts) == 0 {
		return []Row{{Line: line}}
	}
	offs := make([]int, len(parts)+1)
	for i, p := range parts {
		offs[i+1] = offs[i] + len(p)
	}

	wraps := wrap != WrapNone && width > 0
	var rows []Row
	for start := 0; start < len(parts); {
		var (
			x         float32
			gl        []glyph
			lastBreak = -1
			i         = start
		)
		for i < len(parts) {
			w := sh.Advance(parts[i], x)
			if wraps && x > 0 && x+w > width {
				break
			}
			gl = append(gl, glyph{start: offs[i], end: offs[i+1], x: x, w: w})
			x += w
			i++
			if grapheme.IsSpace(parts[i-1]) && (i == len(parts) || !grapheme.IsSpace(parts[i])) {
				lastBreak = i
			}
		}
		end := i
		if end < len(parts) && wrap == WrapWord && lastBreak > start {
			end = lastBreak
			gl = gl[:end-start]
			x = 0
			if len(gl) > 0 {
				last := gl[len(gl)-1]
				x = last.x + last.w
			}
		}
		rows = append(rows, Row{Line: line, Start: offs[start], End: offs[end], Width: x, glyphs: gl})
		start = end
	}
	return rows
}

func alignOffset(align Align, width, rowWidth float32) float32 {
	if width <= 0 {
		return 0
	}
	switch align {
	case AlignCenter:
		return math32.Max(0, (width-rowWidth)/2)
	case AlignRight, AlignEnd:
		return math32.Max(0, width-rowWidth)
	default:
		return 0
	}
}

// Height is the total height of the laid out text.
func (l Layout) Height() float32 {
	return float32(len(l.Rows)) * l.LineHeight
}

// RowOf returns the visual row holding c. A cursor on a wrap boundary belongs
// to the earlier row when its affinity is After, else to the later one.
func (l Layout) RowOf(c buffer.Cursor) int {
	if len(l.Rows) == 0 {
		return 0
	}
	line := c.Line
	if line < 0 {
		line = 0
	}
	if line >= len(l.firstRow) {
		line = len(l.firstRow) - 1
	}
	first := l.firstRow[line]
	last := len(l.Rows) - 1
	if line+1 < len(l.firstRow) {
		last = l.firstRow[line+1] - 1
	}
	for r := first; r <= last; r++ {
		row := l.Rows[r]
		if c.Index < row.End {
			return r
		}
		if c.Index == row.End {
			if r == last || c.Affinity == buffer.After {
				return r
			}
			return r + 1
		}
	}
	return last
}

// isLineEnd reports whether row r is the last row of its logical line.
func (l Layout) isLineEnd(r int) bool {
	return r == len(l.Rows)-1 || l.Rows[r+1].Line != l.Rows[r].Line
}

// XOf returns the x position of c on its visual row, alignment included.
func (l Layout) XOf(c buffer.Cursor) float32 {
	row := l.Rows[l.RowOf(c)]
	x := row.X
	for _, g := range row.glyphs {
		if g.start >= c.Index {
			break
		}
		x = row.X + g.x + g.w
	}
	return x
}

// HitRow maps x to the nearest glyph boundary on row r.
func (l Layout) HitRow(r int, x float32) buffer.Cursor {
	row := l.Rows[r]
	x -= row.X
	idx := row.End
	for _, g := range row.glyphs {
		if x < g.x+g.w/2 {
			idx = g.start
			break
		}
	}
	c := buffer.Cursor{Line: row.Line, Index: idx}
	if idx == row.End && !l.isLineEnd(r) {
		c.Affinity = buffer.After
	}
	return c
}

// Hit maps a buffer-local point to the nearest cursor position. Points
// outside the text clamp to the nearest row and glyph boundary.
func (l Layout) Hit(x, y float32) buffer.Cursor {
	if len(l.Rows) == 0 {
		return buffer.Cursor{}
	}
	r := int(math32.Floor(y / l.LineHeight))
	if r < 0 {
		r = 0
	}
	if r >= len(l.Rows) {
		r = len(l.Rows) - 1
	}
	return l.HitRow(r, x)
}
