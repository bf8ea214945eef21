package buffer

// HistoryEntry is one undo step: the document lines and the cursor at the
// time it was recorded.
type HistoryEntry struct {
	Lines  []Line
	Cursor Cursor
}

// History is a linear undo log with a movable pointer.
//
// Entry 0 is the baseline the session started from; Undo never moves below it.
// Recording after an Undo discards the redo tail.
type History struct {
	entries []HistoryEntry
	current int
	limit   int
}

// NewHistory returns an empty history keeping at most limit entries
// (0 = unlimited). When the limit is exceeded the oldest entries are dropped.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Record appends a snapshot and points the history at it.
func (h *History) Record(lines []Line, cursor Cursor) {
	if len(h.entries) > 0 && h.current < len(h.entries)-1 {
		h.entries = h.entries[:h.current+1]
	}
	h.entries = append(h.entries, HistoryEntry{
		Lines:  append([]Line(nil), lines...),
		Cursor: cursor,
	})
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append([]HistoryEntry(nil), h.entries[len(h.entries)-h.limit:]...)
	}
	h.current = len(h.entries) - 1
}

// Undo steps back one entry and returns it. It is a no-op at the baseline.
func (h *History) Undo() (HistoryEntry, bool) {
	if !h.CanUndo() {
		return HistoryEntry{}, false
	}
	h.current--
	return h.entry(h.current), true
}

// Redo steps forward one entry and returns it. It is a no-op at the end.
func (h *History) Redo() (HistoryEntry, bool) {
	if !h.CanRedo() {
		return HistoryEntry{}, false
	}
	h.current++
	return h.entry(h.current), true
}

func (h *History) CanUndo() bool { return len(h.entries) > 0 && h.current > 0 }

func (h *History) CanRedo() bool { return len(h.entries) > 0 && h.current < len(h.entries)-1 }

func (h *History) Len() int { return len(h.entries) }

// Current returns the index of the entry the document matches.
func (h *History) Current() int { return h.current }

// Reset drops every entry.
func (h *History) Reset() {
	h.entries = nil
	h.current = 0
}

func (h *History) entry(i int) HistoryEntry {
	e := h.entries[i]
	return HistoryEntry{Lines: append([]Line(nil), e.Lines...), Cursor: e.Cursor}
}
