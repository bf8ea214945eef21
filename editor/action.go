package editor

// ActionKind identifies one editing action.
type ActionKind uint8

const (
	// Motions. Extend keeps or creates a selection anchored where the
	// cursor was.
	ActionLeft ActionKind = iota
	ActionRight
	ActionUp
	ActionDown
	ActionPreviousWord
	ActionNextWord
	ActionHome
	ActionEnd
	ActionBufferStart
	ActionBufferEnd
	ActionPageUp
	ActionPageDown

	// Pointer actions, carrying a buffer-local point.
	ActionClick
	ActionDrag
	ActionDoubleClick
	ActionTripleClick

	ActionSelectAll
	ActionEscape

	// Edits.
	ActionInsert
	ActionInsertText
	ActionEnter
	ActionBackspace
	ActionDelete

	ActionCopy
	ActionCut
)

var actionNames = [...]string{
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionUp:           "up",
	ActionDown:         "down",
	ActionPreviousWord: "previous-word",
	ActionNextWord:     "next-word",
	ActionHome:         "home",
	ActionEnd:          "end",
	ActionBufferStart:  "buffer-start",
	ActionBufferEnd:    "buffer-end",
	ActionPageUp:       "page-up",
	ActionPageDown:     "page-down",
	ActionClick:        "click",
	ActionDrag:         "drag",
	ActionDoubleClick:  "double-click",
	ActionTripleClick:  "triple-click",
	ActionSelectAll:    "select-all",
	ActionEscape:       "escape",
	ActionInsert:       "insert",
	ActionInsertText:   "insert-text",
	ActionEnter:        "enter",
	ActionBackspace:    "backspace",
	ActionDelete:       "delete",
	ActionCopy:         "copy",
	ActionCut:          "cut",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// IsMotion reports whether k only moves the cursor.
func (k ActionKind) IsMotion() bool { return k <= ActionPageDown }

// IsEdit reports whether k may change the text.
func (k ActionKind) IsEdit() bool {
	switch k {
	case ActionInsert, ActionInsertText, ActionEnter, ActionBackspace, ActionDelete, ActionCut:
		return true
	}
	return false
}

// Action is a single request to the editor. Only the fields relevant to Kind
// are read.
type Action struct {
	Kind   ActionKind
	Extend bool
	X, Y   float32
	Rune   rune
	Text   string
}

// Motion returns a motion action.
func Motion(k ActionKind, extend bool) Action { return Action{Kind: k, Extend: extend} }

// Pointer returns a pointer action at a buffer-local point.
func Pointer(k ActionKind, x, y float32) Action { return Action{Kind: k, X: x, Y: y} }

// Insert returns an action inserting r.
func Insert(r rune) Action { return Action{Kind: ActionInsert, Rune: r} }

// InsertText returns an action inserting s, typically a paste.
func InsertText(s string) Action { return Action{Kind: ActionInsertText, Text: s} }

// Simple returns an action that needs no arguments.
func Simple(k ActionKind) Action { return Action{Kind: k} }

// Effect reports what an action changed.
type Effect struct {
	Text   bool
	Cursor bool
}

func (e Effect) Changed() bool { return e.Text || e.Cursor }
