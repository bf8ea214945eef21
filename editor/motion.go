package editor

import "github.com/iw2rmb/inkwell/buffer"

func (e *Editor) motion(sh Shaper, a Action) {
	if a.Extend {
		if !e.sel.Active() {
			e.sel = buffer.Anchored(e.cursor)
		}
	} else if r, ok := e.SelectionRange(); ok {
		// Horizontal motions over a selection land on its edge.
		switch a.Kind {
		case ActionLeft:
			e.sel = buffer.NoSelection
			e.cursor = r.Start
			return
		case ActionRight:
			e.sel = buffer.NoSelection
			e.cursor = r.End
			return
		}
		e.sel = buffer.NoSelection
	} else {
		e.sel = buffer.NoSelection
	}

	b := e.buf
	switch a.Kind {
	case ActionLeft:
		e.cursor = b.PrevGrapheme(e.cursor)
	case ActionRight:
		e.cursor = b.NextGrapheme(e.cursor)
	case ActionPreviousWord:
		e.cursor = b.PrevWord(e.cursor)
	case ActionNextWord:
		e.cursor = b.NextWord(e.cursor)
	case ActionBufferStart:
		e.cursor = buffer.Cursor{}
	case ActionBufferEnd:
		e.cursor = b.End()
	case ActionHome, ActionEnd:
		lay := e.Layout(sh)
		r := lay.RowOf(e.cursor)
		row := lay.Rows[r]
		if a.Kind == ActionHome {
			e.cursor = buffer.Cursor{Line: row.Line, Index: row.Start}
		} else {
			e.cursor = buffer.Cursor{Line: row.Line, Index: row.End}
			if !lay.isLineEnd(r) {
				e.cursor.Affinity = buffer.After
			}
		}
	case ActionUp:
		e.vertical(sh, -1)
	case ActionDown:
		e.vertical(sh, 1)
	case ActionPageUp:
		lay := e.Layout(sh)
		e.vertical(sh, -e.visibleRows(lay))
	case ActionPageDown:
		lay := e.Layout(sh)
		e.vertical(sh, e.visibleRows(lay))
	}
}

// vertical moves delta visual rows keeping the preferred x. Moving past the
// first or last row lands on the start or end of the text.
func (e *Editor) vertical(sh Shaper, delta int) {
	lay := e.Layout(sh)
	if !e.hasPreferredX {
		e.preferredX = lay.XOf(e.cursor)
		e.hasPreferredX = true
	}
	target := lay.RowOf(e.cursor) + delta
	switch {
	case target < 0:
		e.cursor = buffer.Cursor{}
	case target >= len(lay.Rows):
		e.cursor = e.buf.End()
	default:
		e.cursor = lay.HitRow(target, e.preferredX)
	}
}
