package editor

import (
	"github.com/iw2rmb/inkwell/buffer"
)

// Caret is the drawn position of the cursor, relative to the top-left of the
// widget with scrolling applied.
type Caret struct {
	X, Y     float32
	Row      int
	Height   float32
	Affinity buffer.Affinity
}

// Rect is an axis-aligned rectangle in widget coordinates.
type Rect struct {
	X, Y, W, H float32
}

// CursorPosition returns where the caret is drawn.
func (e *Editor) CursorPosition(sh Shaper) Caret {
	lay := e.Layout(sh)
	r := lay.RowOf(e.cursor)
	return Caret{
		X:        lay.XOf(e.cursor),
		Y:        float32(r-e.scroll) * lay.LineHeight,
		Row:      r,
		Height:   lay.LineHeight,
		Affinity: e.cursor.Affinity,
	}
}

// SelectionRects returns one rectangle per visual row touched by the
// selection. Rows past the end of their line's selected part get a sliver so
// that selected newlines stay visible.
func (e *Editor) SelectionRects(sh Shaper) []Rect {
	sel, ok := e.SelectionRange()
	if !ok {
		return nil
	}
	lay := e.Layout(sh)
	first := lay.RowOf(sel.Start)
	last := lay.RowOf(sel.End)
	// A selection ending exactly at a row start does not cover that row.
	if last > first && sel.End.Index == lay.Rows[last].Start && sel.End.Line == lay.Rows[last].Line && sel.End.Index > 0 {
		last--
	}

	var rects []Rect
	for r := first; r <= last; r++ {
		row := lay.Rows[r]
		x0 := row.X
		x1 := row.X + row.Width
		if r == first {
			x0 = lay.XOf(sel.Start)
		}
		if r == last {
			end := sel.End
			if end.Index == row.End && !lay.isLineEnd(r) {
				end.Affinity = buffer.After
			}
			x1 = lay.XOf(end)
		} else if lay.isLineEnd(r) {
			x1 += sh.Advance(" ", x1)
		}
		if x1 <= x0 {
			continue
		}
		rects = append(rects, Rect{
			X: x0,
			Y: float32(r-e.scroll) * lay.LineHeight,
			W: x1 - x0,
			H: lay.LineHeight,
		})
	}
	return rects
}
