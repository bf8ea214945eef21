package input

import (
	"testing"
	"time"

	"github.com/iw2rmb/inkwell/editor"
)

func newTestTranslator(t *testing.T, cmd CommandModifier) *Translator {
	t.Helper()
	s := mustSurface(t, SurfaceOptions{Panel: &Panel{Origin: Point{10, 5}}, Size: Point{20, 4}})
	return NewTranslator(7, s, AlignTop, DefaultKeyMap(cmd), 0)
}

func equalCommands(a, b []Command) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKeyEvent_StringAndParse(t *testing.T) {
	k := KeyEvent{Key: "left", Mods: ModShift | ModCtrl}
	if got := k.String(); got != "ctrl+shift+left" {
		t.Fatalf("string=%q, want %q", got, "ctrl+shift+left")
	}
	cases := []struct {
		chord string
		want  KeyEvent
	}{
		{"shift+ctrl+left", k},
		{"ctrl++", KeyEvent{Key: "+", Mods: ModCtrl}},
		{"a", KeyEvent{Key: "a"}},
		{"meta+z", KeyEvent{Key: "z", Mods: ModSuper}},
	}
	for _, tc := range cases {
		if got := ParseChord(tc.chord); got != tc.want {
			t.Fatalf("ParseChord(%q)=%+v, want %+v", tc.chord, got, tc.want)
		}
	}
}

func TestTranslator_KeyBindings(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)
	cases := []struct {
		chord string
		want  Command
	}{
		{"left", act(editor.Motion(editor.ActionLeft, false))},
		{"shift+left", act(editor.Motion(editor.ActionLeft, true))},
		{"alt+right", act(editor.Motion(editor.ActionNextWord, false))},
		{"ctrl+shift+left", act(editor.Motion(editor.ActionPreviousWord, true))},
		{"ctrl+home", act(editor.Motion(editor.ActionBufferStart, false))},
		{"shift+pgdown", act(editor.Motion(editor.ActionPageDown, true))},
		{"backspace", act(editor.Simple(editor.ActionBackspace))},
		{"enter", act(editor.Simple(editor.ActionEnter))},
		{"esc", act(editor.Simple(editor.ActionEscape))},
		{"ctrl+a", act(editor.Simple(editor.ActionSelectAll))},
		{"ctrl+c", act(editor.Simple(editor.ActionCopy))},
		{"ctrl+x", act(editor.Simple(editor.ActionCut))},
		{"ctrl+v", Command{Kind: CommandPaste}},
		{"ctrl+z", Command{Kind: CommandUndo}},
		{"ctrl+shift+z", Command{Kind: CommandRedo}},
		{"ctrl+y", Command{Kind: CommandRedo}},
	}
	for _, tc := range cases {
		got, ok := tr.Key(ParseChord(tc.chord))
		if !ok || got != tc.want {
			t.Fatalf("%s: command=%+v,%v, want %+v,true", tc.chord, got, ok, tc.want)
		}
	}
}

func TestTranslator_CommandModifierIsInjected(t *testing.T) {
	tr := newTestTranslator(t, CommandSuper)

	if got, ok := tr.Key(ParseChord("super+z")); !ok || got.Kind != CommandUndo {
		t.Fatalf("super+z=%+v,%v, want undo", got, ok)
	}
	if _, ok := tr.Key(ParseChord("ctrl+z")); ok {
		t.Fatalf("ctrl+z bound with the super command modifier")
	}
}

func TestTranslator_TextKeys(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)
	cases := []struct {
		name string
		ev   KeyEvent
		want Command
	}{
		{"rune", KeyEvent{Key: "a", Text: "a"}, act(editor.Insert('a'))},
		{"shifted", KeyEvent{Key: "A", Text: "A", Mods: ModShift}, act(editor.Insert('A'))},
		{"cluster", KeyEvent{Text: "e\u0301"}, act(editor.InsertText("e\u0301"))},
		{"paste", KeyEvent{Text: "pasted\ntext", Paste: true}, act(editor.InsertText("pasted\ntext"))},
	}
	for _, tc := range cases {
		got, ok := tr.Key(tc.ev)
		if !ok || got != tc.want {
			t.Fatalf("%s: command=%+v,%v, want %+v,true", tc.name, got, ok, tc.want)
		}
	}

	if _, ok := tr.Key(KeyEvent{Key: "q", Text: "q", Mods: ModAlt}); ok {
		t.Fatalf("alt+q inserted text")
	}
	if _, ok := tr.Key(KeyEvent{Key: "f5"}); ok {
		t.Fatalf("f5 translated")
	}
}

func TestTranslator_PointerClickAndDrag(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)

	if got := tr.Pointer(PointerEvent{Kind: PointerOver, Pos: Point{12, 6}}, 2); got != nil {
		t.Fatalf("over=%+v, want nil", got)
	}
	if got := tr.DragState().Phase(); got != DragHovering {
		t.Fatalf("phase=%v, want %v", got, DragHovering)
	}
	if got := tr.Pointer(PointerEvent{Kind: PointerMove, Pos: Point{13, 6}}, 2); got != nil {
		t.Fatalf("hover move=%+v, want nil", got)
	}

	got := tr.Pointer(PointerEvent{Kind: PointerDown, Pos: Point{12, 6}, Button: ButtonPrimary}, 2)
	if want := []Command{act(editor.Pointer(editor.ActionClick, 2, 1))}; !equalCommands(got, want) {
		t.Fatalf("press=%+v, want %+v", got, want)
	}
	got = tr.Pointer(PointerEvent{Kind: PointerMove, Pos: Point{16, 7}}, 2)
	if want := []Command{act(editor.Pointer(editor.ActionDrag, 6, 2))}; !equalCommands(got, want) {
		t.Fatalf("drag=%+v, want %+v", got, want)
	}

	// Releasing away from the press point is not a click.
	if got := tr.Pointer(PointerEvent{Kind: PointerUp, Pos: Point{16, 7}, Button: ButtonPrimary}, 2); got != nil {
		t.Fatalf("release=%+v, want nil", got)
	}
	if got := tr.DragState().Phase(); got != DragIdle {
		t.Fatalf("phase=%v, want %v", got, DragIdle)
	}
	if got := tr.Clicks.Count(); got != ClickNone {
		t.Fatalf("clicks=%v, want %v", got, ClickNone)
	}
}

func TestTranslator_ShiftPressExtends(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)
	got := tr.Pointer(PointerEvent{Kind: PointerDown, Pos: Point{12, 6}, Button: ButtonPrimary, Mods: ModShift}, 2)
	if want := []Command{act(editor.Pointer(editor.ActionDrag, 2, 1))}; !equalCommands(got, want) {
		t.Fatalf("shift press=%+v, want %+v", got, want)
	}
}

func TestTranslator_ClickMultiplicity(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)
	p := Point{12, 6}
	click := func() []Command {
		tr.Pointer(PointerEvent{Kind: PointerDown, Pos: p, Button: ButtonPrimary}, 2)
		return tr.Pointer(PointerEvent{Kind: PointerUp, Pos: p, Button: ButtonPrimary}, 2)
	}

	if got := click(); got != nil {
		t.Fatalf("single click=%+v, want nil", got)
	}
	tr.Tick(100 * time.Millisecond)
	steps := [][]Command{
		{act(editor.Pointer(editor.ActionDoubleClick, 2, 1))},
		{act(editor.Pointer(editor.ActionTripleClick, 2, 1))},
		{act(editor.Simple(editor.ActionSelectAll))},
	}
	for i, want := range steps {
		if got := click(); !equalCommands(got, want) {
			t.Fatalf("click %d=%+v, want %+v", i+2, got, want)
		}
	}

	tr.Tick(time.Second)
	if got := click(); got != nil {
		t.Fatalf("click after timeout=%+v, want nil", got)
	}
	if got := tr.Clicks.Count(); got != ClickSingle {
		t.Fatalf("clicks=%v, want %v", got, ClickSingle)
	}
}

func TestTranslator_SecondaryButtonIgnored(t *testing.T) {
	tr := newTestTranslator(t, CommandCtrl)
	if got := tr.Pointer(PointerEvent{Kind: PointerDown, Pos: Point{12, 6}, Button: ButtonSecondary}, 2); got != nil {
		t.Fatalf("secondary press=%+v, want nil", got)
	}
	if got := tr.DragState().Phase(); got != DragIdle {
		t.Fatalf("phase=%v, want %v", got, DragIdle)
	}
}

func TestTranslator_GeometryErrorDropsEvent(t *testing.T) {
	s := mustSurface(t, SurfaceOptions{Panel: &Panel{}})
	tr := NewTranslator(1, s, AlignTop, DefaultKeyMap(CommandCtrl), 0)

	if got := tr.Pointer(PointerEvent{Kind: PointerDown, Pos: Point{1, 1}, Button: ButtonPrimary}, 1); got != nil {
		t.Fatalf("press=%+v, want nil", got)
	}
	if got := tr.DragState().Phase(); got != DragIdle {
		t.Fatalf("phase=%v, want %v", got, DragIdle)
	}
}
