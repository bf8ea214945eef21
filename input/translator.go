package input

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/chewxy/math32"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/inkwell/editor"
)

// clickSlop is how far, in logical units, the pointer may travel between
// press and release for the release to still count as a click.
const clickSlop = 1

// CommandKind classifies a translated input.
type CommandKind uint8

const (
	CommandAction CommandKind = iota
	CommandUndo
	CommandRedo
	CommandPaste
)

// Command is an editor action or a host-level request produced from input.
type Command struct {
	Kind   CommandKind
	Action editor.Action
}

func act(a editor.Action) Command { return Command{Kind: CommandAction, Action: a} }

// Translator turns one widget's raw events into commands.
type Translator struct {
	// ID identifies the widget for click counting.
	ID      uint64
	Surface Surface
	VAlign  VerticalAlign
	Keys    KeyMap
	Clicks  ClickState

	drag   DragState
	downAt Point
}

// NewTranslator returns a translator for the widget id on surface.
func NewTranslator(id uint64, surface Surface, va VerticalAlign, keys KeyMap, clickTimeout time.Duration) *Translator {
	return &Translator{
		ID:      id,
		Surface: surface,
		VAlign:  va,
		Keys:    keys,
		Clicks:  NewClickState(clickTimeout),
	}
}

func (t *Translator) DragState() DragState { return t.drag }

// Tick advances the click timer by one frame.
func (t *Translator) Tick(dt time.Duration) { t.Clicks.Tick(dt) }

func (t *Translator) local(p Point, contentHeight float32) (Point, bool) {
	lp, err := t.Surface.ToBuffer(p, contentHeight, t.VAlign)
	if err != nil {
		log.Warn().Err(err).Uint64("widget", t.ID).Msg("dropping pointer event")
		return Point{}, false
	}
	return lp, true
}

// Pointer translates a pointer event. contentHeight is the height of the
// laid out text, used for vertical alignment.
func (t *Translator) Pointer(ev PointerEvent, contentHeight float32) []Command {
	switch ev.Kind {
	case PointerOver:
		t.drag.Handle(HoverStart, ev.Pos)
	case PointerOut:
		t.drag.Handle(HoverEnd, ev.Pos)
	case PointerDown:
		if ev.Button != ButtonPrimary {
			return nil
		}
		p, ok := t.local(ev.Pos, contentHeight)
		if !ok || !t.drag.Handle(DragStart, p) {
			return nil
		}
		t.downAt = p
		if ev.Mods.Has(ModShift) {
			return []Command{act(editor.Pointer(editor.ActionDrag, p.X, p.Y))}
		}
		return []Command{act(editor.Pointer(editor.ActionClick, p.X, p.Y))}
	case PointerMove:
		// Plain hover motion carries no action.
		if t.drag.Phase() != DragDragging {
			return nil
		}
		p, ok := t.local(ev.Pos, contentHeight)
		if !ok || !t.drag.Handle(Drag, p) {
			return nil
		}
		return []Command{act(editor.Pointer(editor.ActionDrag, p.X, p.Y))}
	case PointerUp:
		if ev.Button != ButtonPrimary {
			return nil
		}
		if !t.drag.Handle(DragEnd, ev.Pos) {
			return nil
		}
		p, ok := t.local(ev.Pos, contentHeight)
		if !ok {
			return nil
		}
		dx, dy := p.X-t.downAt.X, p.Y-t.downAt.Y
		if math32.Sqrt(dx*dx+dy*dy) > clickSlop {
			t.Clicks.Reset()
			return nil
		}
		return t.click(p)
	}
	return nil
}

func (t *Translator) click(p Point) []Command {
	switch t.Clicks.Click(t.ID) {
	case ClickDouble:
		return []Command{act(editor.Pointer(editor.ActionDoubleClick, p.X, p.Y))}
	case ClickTriple:
		return []Command{act(editor.Pointer(editor.ActionTripleClick, p.X, p.Y))}
	case ClickMoreThanTriple:
		return []Command{act(editor.Simple(editor.ActionSelectAll))}
	}
	// A single click already placed the cursor on press.
	return nil
}

type binding struct {
	b    *key.Binding
	kind editor.ActionKind
}

func (t *Translator) motions() []binding {
	k := &t.Keys
	return []binding{
		{&k.Left, editor.ActionLeft},
		{&k.Right, editor.ActionRight},
		{&k.Up, editor.ActionUp},
		{&k.Down, editor.ActionDown},
		{&k.WordLeft, editor.ActionPreviousWord},
		{&k.WordRight, editor.ActionNextWord},
		{&k.Home, editor.ActionHome},
		{&k.End, editor.ActionEnd},
		{&k.BufferStart, editor.ActionBufferStart},
		{&k.BufferEnd, editor.ActionBufferEnd},
		{&k.PageUp, editor.ActionPageUp},
		{&k.PageDown, editor.ActionPageDown},
	}
}

// Key translates a key event. ok is false when the key means nothing to the
// editor.
func (t *Translator) Key(ev KeyEvent) (Command, bool) {
	if ev.Paste {
		if ev.Text == "" {
			return Command{}, false
		}
		return act(editor.InsertText(ev.Text)), true
	}

	k := &t.Keys
	switch {
	case key.Matches(ev, k.Undo):
		return Command{Kind: CommandUndo}, true
	case key.Matches(ev, k.Redo):
		return Command{Kind: CommandRedo}, true
	case key.Matches(ev, k.Paste):
		return Command{Kind: CommandPaste}, true
	case key.Matches(ev, k.Copy):
		return act(editor.Simple(editor.ActionCopy)), true
	case key.Matches(ev, k.Cut):
		return act(editor.Simple(editor.ActionCut)), true
	case key.Matches(ev, k.SelectAll):
		return act(editor.Simple(editor.ActionSelectAll)), true
	case key.Matches(ev, k.Backspace):
		return act(editor.Simple(editor.ActionBackspace)), true
	case key.Matches(ev, k.Delete):
		return act(editor.Simple(editor.ActionDelete)), true
	case key.Matches(ev, k.Enter):
		return act(editor.Simple(editor.ActionEnter)), true
	case key.Matches(ev, k.Escape):
		return act(editor.Simple(editor.ActionEscape)), true
	}

	for _, m := range t.motions() {
		if key.Matches(ev, *m.b) {
			return act(editor.Motion(m.kind, false)), true
		}
	}
	if ev.Mods.Has(ModShift) {
		plain := ev.without(ModShift)
		for _, m := range t.motions() {
			if key.Matches(plain, *m.b) {
				return act(editor.Motion(m.kind, true)), true
			}
		}
	}

	if ev.Text == "" || ev.Mods&(ModCtrl|ModAlt|ModSuper) != 0 {
		return Command{}, false
	}
	if r, size := utf8.DecodeRuneInString(ev.Text); size == len(ev.Text) {
		return act(editor.Insert(r)), true
	}
	return act(editor.InsertText(ev.Text)), true
}
