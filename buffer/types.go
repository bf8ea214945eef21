package buffer

// Affinity disambiguates a cursor sitting exactly on a soft-wrap boundary.
//
// Before binds the cursor to the start of the next visual row, After to the
// end of the previous one. Affinity never changes the logical position.
type Affinity uint8

const (
	Before Affinity = iota
	After
)

func (a Affinity) String() string {
	if a == After {
		return "after"
	}
	return "before"
}

// Cursor is a logical position: Line index plus byte Index within that line.
type Cursor struct {
	Line     int
	Index    int
	Affinity Affinity
}

// Compare orders cursors by (Line, Index). Affinity is ignored.
func Compare(a, b Cursor) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Index < b.Index {
		return -1
	}
	if a.Index > b.Index {
		return 1
	}
	return 0
}

// SamePos reports whether a and b address the same logical position.
func SamePos(a, b Cursor) bool { return Compare(a, b) == 0 }

// Range is a half-open span of the document: [Start, End).
type Range struct {
	Start Cursor
	End   Cursor
}

// NormalizeRange swaps Start and End when they are out of order.
func NormalizeRange(r Range) Range {
	if Compare(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool { return SamePos(r.Start, r.End) }

// Selection is either empty or anchored at a cursor position; the selected
// range runs from the anchor to the live cursor.
type Selection struct {
	anchor Cursor
	active bool
}

// NoSelection is the empty selection.
var NoSelection = Selection{}

// Anchored returns a selection anchored at c.
func Anchored(c Cursor) Selection { return Selection{anchor: c, active: true} }

// Anchor returns the anchor and whether the selection is active.
func (s Selection) Anchor() (Cursor, bool) { return s.anchor, s.active }

func (s Selection) Active() bool { return s.active }

// CollapseIfEqual clears the selection when its anchor coincides with cursor.
func (s Selection) CollapseIfEqual(cursor Cursor) Selection {
	if s.active && SamePos(s.anchor, cursor) {
		return NoSelection
	}
	return s
}

// Range returns the ordered selected range for cursor, if non-empty.
func (s Selection) Range(cursor Cursor) (Range, bool) {
	if !s.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: s.anchor, End: cursor})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
