package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the byte range [Start, End) of a line on top of the
// line's own spans.
type HighlightSpan struct {
	Start int
	End   int
	Style lipgloss.Style
}

// LineContext is what a highlighter sees of one drawn line. For a password
// field Text is the masked text.
type LineContext struct {
	Line int
	Text string

	// Cursor is the cursor's byte index in Text when HasCursor is set.
	Cursor    int
	HasCursor bool
}

// Highlighter decorates lines at draw time. It is called once per visible
// line; on error the line is drawn without highlights.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

// normalizeHighlightSpans clamps spans into the line, drops empty ones and
// keeps the first of any overlapping pair, in start order.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.Start, 0, lineLen)
		end := clampInt(sp.End, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{Start: start, End: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})

	merged := out[:0]
	for _, sp := range out {
		if len(merged) > 0 && sp.Start < merged[len(merged)-1].End {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func highlightAt(spans []HighlightSpan, idx int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if idx < sp.Start {
			break
		}
		if idx < sp.End {
			return sp.Style, true
		}
	}
	return lipgloss.Style{}, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
