package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/input"
	"github.com/iw2rmb/inkwell/widget"
)

func TestKeyEvent(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want input.KeyEvent
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, input.KeyEvent{Key: "a", Text: "a"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}, input.KeyEvent{Key: "b", Text: "b", Mods: input.ModAlt}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, input.KeyEvent{Key: "space", Text: " "}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, input.KeyEvent{Key: "tab", Text: "\t"}},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlZ}, input.KeyEvent{Key: "z", Mods: input.ModCtrl}},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftLeft}, input.KeyEvent{Key: "left", Mods: input.ModShift}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEvent{Key: "enter"}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\ny"), Paste: true}, input.KeyEvent{Text: "x\ny", Paste: true}},
	}
	for _, tc := range cases {
		got, ok := KeyEvent(tc.msg)
		if !ok {
			t.Fatalf("%s: not converted", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}

	if _, ok := KeyEvent(tea.KeyMsg{Type: tea.KeyRunes}); ok {
		t.Fatalf("empty runes converted")
	}
}

func TestPointerEvent(t *testing.T) {
	got, ok := PointerEvent(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	want := input.PointerEvent{Kind: input.PointerDown, Pos: input.Point{X: 3, Y: 1.5}, Button: input.ButtonPrimary, Mods: input.ModShift}
	if !ok || got != want {
		t.Fatalf("press: got %+v ok=%v, want %+v", got, ok, want)
	}

	got, ok = PointerEvent(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if !ok || got.Kind != input.PointerUp || got.Button != input.ButtonPrimary {
		t.Fatalf("release: got %+v ok=%v", got, ok)
	}

	got, ok = PointerEvent(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !ok || got.Kind != input.PointerMove {
		t.Fatalf("motion: got %+v ok=%v", got, ok)
	}

	if _, ok := PointerEvent(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}); ok {
		t.Fatalf("wheel converted")
	}
}

// drain runs cmd and every command it batches, collecting the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newTestModel(t *testing.T) (Model, *widget.Widget, *widget.Widget) {
	t.Helper()
	user := newField(t, widget.Config{ID: 1}, "")
	pass := newField(t, widget.Config{ID: 2, Password: true}, "")
	return New(Field{Label: "User", Widget: user}, Field{Label: "Password", Widget: pass}), user, pass
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, []tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, drain(cmd)
}

func TestModel_LayoutAndFocus(t *testing.T) {
	m, user, pass := newTestModel(t)
	if m.Focused() != user || !user.Focused() {
		t.Fatalf("first field not focused")
	}

	// Labels take 8 cells plus a gap; fields are 2 rows, one row apart.
	if !user.Translator().Surface.Contains(input.Point{X: 9, Y: 0}) {
		t.Fatalf("user field not at (9,0)")
	}
	if !pass.Translator().Surface.Contains(input.Point{X: 9, Y: 3}) {
		t.Fatalf("password field not at (9,3)")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != pass || user.Focused() {
		t.Fatalf("tab did not move focus")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != user {
		t.Fatalf("shift+tab did not move focus back")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Focused() != pass {
		t.Fatalf("click did not focus the password field")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Focused() != nil {
		t.Fatalf("click outside did not blur")
	}
}

func TestModel_TypingEmitsChanges(t *testing.T) {
	m, user, _ := newTestModel(t)
	var seen []widget.TextChanged
	user.OnChange = func(ev widget.TextChanged) { seen = append(seen, ev) }
	m = New(m.Fields()...)

	m, msgs := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if user.Text() != "hi" {
		t.Fatalf("text=%q, want %q", user.Text(), "hi")
	}
	if len(msgs) != 1 || msgs[0] != ChangedMsg(widget.TextChanged{ID: 1, Text: "hi"}) {
		t.Fatalf("msgs=%v", msgs)
	}
	if len(seen) != 1 {
		t.Fatalf("host callback not chained: %v", seen)
	}

	_, msgs = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(msgs) != 0 {
		t.Fatalf("motion produced %v", msgs)
	}
}

func TestModel_ViewAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pw")})

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d rows, want 5:\n%s", len(lines), view)
	}
	if !strings.HasPrefix(lines[0], "User     ab") {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "Password ••") {
		t.Fatalf("row 3 = %q", lines[3])
	}
	if strings.Contains(view, "pw") {
		t.Fatalf("password leaked into view")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q did not quit")
	}
}
