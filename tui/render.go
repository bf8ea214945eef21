package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chewxy/math32"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/widget"
)

// Render draws w into a block of exactly its height in rows, each padded to
// its width in cells.
func Render(w *widget.Widget, sh editor.Shaper, st Style) string {
	return RenderHighlighted(w, sh, st, nil)
}

// RenderHighlighted is Render with hl decorating the visible lines.
func RenderHighlighted(w *widget.Widget, sh editor.Shaper, st Style, hl Highlighter) string {
	cfg := w.Config()
	width := int(cfg.Editor.Width)
	height := int(cfg.Editor.Height)
	if height < 1 {
		height = 1
	}

	lines := w.Lines()
	lay := w.Layout(sh)

	var (
		cursor    buffer.Cursor
		cursorRow = -1
		sel       buffer.Range
		selOK     bool
		scroll    int
	)
	if ed, ok := w.Editor(); ok {
		cursor = ed.Cursor()
		cursorRow = lay.RowOf(cursor)
		sel, selOK = ed.SelectionRange()
		scroll = ed.Scroll()
	}

	top := int(math32.Floor(w.Translator().Surface.ContentOffset(lay.Height(), w.Translator().VAlign) / lay.LineHeight))
	highlights := map[int][]HighlightSpan{}
	out := make([]string, 0, height)
	for i := 0; i < top && len(out) < height; i++ {
		out = append(out, pad("", 0, width, st))
	}
	for r := scroll; r < len(lay.Rows) && len(out) < height; r++ {
		row := lay.Rows[r]
		var line buffer.Line
		if row.Line < len(lines) {
			line = lines[row.Line]
		}
		spans, seen := highlights[row.Line]
		if !seen && hl != nil {
			spans = highlightLine(hl, w.ID(), row.Line, line, cursor, cursorRow >= 0)
			highlights[row.Line] = spans
		}
		rr := rowRenderer{
			st:        st,
			spans:     spans,
			sh:        sh,
			def:       cfg.Editor.Attrs,
			sel:       sel,
			selOK:     selOK,
			hasCursor: r == cursorRow,
			cursor:    cursor,
		}
		s, cells := rr.render(line, row)
		out = append(out, pad(s, cells, width, st))
	}
	for len(out) < height {
		out = append(out, pad("", 0, width, st))
	}
	return strings.Join(out, "\n")
}

type rowRenderer struct {
	st    Style
	spans []HighlightSpan
	sh    editor.Shaper
	def   buffer.Attrs
	sel   buffer.Range
	selOK bool

	hasCursor bool
	cursor    buffer.Cursor
}

func (rr rowRenderer) render(line buffer.Line, row editor.Row) (string, int) {
	var sb strings.Builder
	x := int(row.X)
	sb.WriteString(strings.Repeat(" ", x))

	pos := 0
	for _, seg := range line.Segments(rr.def) {
		base := rr.st.Text.Inherit(seg.Attrs.Lipgloss())
		for _, cl := range grapheme.Split(seg.Text) {
			start := pos
			pos += len(cl)
			if start < row.Start || start >= row.End {
				continue
			}
			w, ok := row.Advance(start)
			if !ok {
				w = rr.sh.Advance(cl, float32(x)-row.X)
			}
			adv := int(w)
			if grapheme.IsSpace(cl) {
				cl = strings.Repeat(" ", adv)
			}
			sb.WriteString(rr.style(base, buffer.Cursor{Line: row.Line, Index: start}).Render(cl))
			x += adv
		}
	}
	if rr.hasCursor && rr.cursor.Index >= row.End {
		sb.WriteString(rr.st.Cursor.Render(" "))
		x++
	}
	return sb.String(), x
}

func (rr rowRenderer) style(base lipgloss.Style, at buffer.Cursor) lipgloss.Style {
	if hs, ok := highlightAt(rr.spans, at.Index); ok {
		base = hs.Inherit(base)
	}
	if rr.hasCursor && buffer.SamePos(rr.cursor, at) {
		return rr.st.Cursor.Inherit(base)
	}
	if rr.selOK && buffer.Compare(rr.sel.Start, at) <= 0 && buffer.Compare(at, rr.sel.End) < 0 {
		return rr.st.Selection.Inherit(base)
	}
	return base
}

func highlightLine(hl Highlighter, id uint64, i int, line buffer.Line, cursor buffer.Cursor, live bool) []HighlightSpan {
	ctx := LineContext{Line: i, Text: line.Text()}
	if live && cursor.Line == i {
		ctx.Cursor, ctx.HasCursor = cursor.Index, true
	}
	spans, err := hl.HighlightLine(ctx)
	if err != nil {
		log.Warn().Err(err).Uint64("widget", id).Int("line", i).Msg("highlighter failed")
		return nil
	}
	return normalizeHighlightSpans(spans, line.Len())
}

func pad(s string, cells, width int, st Style) string {
	if cells >= width {
		return s
	}
	return s + st.Text.Render(strings.Repeat(" ", width-cells))
}
