package input

import (
	"time"

	"github.com/iw2rmb/inkwell/buffer"
)

// DefaultDebounce is the idle window that separates history entries.
const DefaultDebounce = 150 * time.Millisecond

// Recorder feeds a History with debounced snapshots so that a burst of
// typing becomes roughly one undo step.
//
// The first edit after Begin is recorded at once. Later edits are recorded
// when at least Window has passed since the previous record; otherwise the
// newest snapshot waits and Tick flushes it once the window has passed.
type Recorder struct {
	Window time.Duration

	history *buffer.History
	since   time.Duration
	edited  bool
	pending *buffer.HistoryEntry
}

// NewRecorder returns a recorder over a history of at most limit entries
// (0 means unlimited). A zero window uses DefaultDebounce.
func NewRecorder(limit int, window time.Duration) *Recorder {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Recorder{Window: window, history: buffer.NewHistory(limit)}
}

func (r *Recorder) History() *buffer.History { return r.history }

// Begin starts a new session: history is cleared and the current state
// becomes the baseline undo returns to.
func (r *Recorder) Begin(lines []buffer.Line, cursor buffer.Cursor) {
	r.history.Reset()
	r.history.Record(lines, cursor)
	r.since = 0
	r.edited = false
	r.pending = nil
}

// Edited notes that an edit produced lines and cursor.
func (r *Recorder) Edited(lines []buffer.Line, cursor buffer.Cursor) {
	if !r.edited || r.since >= r.Window {
		r.record(buffer.HistoryEntry{Lines: lines, Cursor: cursor})
		r.edited = true
		return
	}
	r.pending = &buffer.HistoryEntry{Lines: lines, Cursor: cursor}
}

// Tick advances the idle timer and flushes a pending snapshot whose window
// has passed.
func (r *Recorder) Tick(dt time.Duration) {
	r.since += dt
	if r.pending != nil && r.since >= r.Window {
		r.Flush()
	}
}

// Flush records the pending snapshot, if any.
func (r *Recorder) Flush() {
	if r.pending == nil {
		return
	}
	r.record(*r.pending)
}

// Pending reports whether a snapshot is waiting for its window.
func (r *Recorder) Pending() bool { return r.pending != nil }

func (r *Recorder) record(e buffer.HistoryEntry) {
	r.history.Record(e.Lines, e.Cursor)
	r.pending = nil
	r.since = 0
}

// Undo flushes pending edits and steps back.
func (r *Recorder) Undo() (buffer.HistoryEntry, bool) {
	r.Flush()
	return r.history.Undo()
}

// Redo steps forward.
func (r *Recorder) Redo() (buffer.HistoryEntry, bool) {
	r.Flush()
	return r.history.Redo()
}
