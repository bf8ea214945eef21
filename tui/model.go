// Package tui hosts text widgets in a Bubble Tea program: terminal keys and
// mouse events become widget input, widgets are framed on a timer, and the
// styled text is drawn with lipgloss.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/input"
	"github.com/iw2rmb/inkwell/widget"
)

// DefaultFrameInterval is the time between frames.
const DefaultFrameInterval = 16 * time.Millisecond

// Field is one labelled widget. Highlighter is optional.
type Field struct {
	Label       string
	Widget      *widget.Widget
	Highlighter Highlighter
}

// FrameMsg triggers a frame.
type FrameMsg time.Time

// ChangedMsg reports that a widget's text changed during a frame.
type ChangedMsg widget.TextChanged

// KeyMap holds the host-level bindings; everything else goes to the focused
// widget.
type KeyMap struct {
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

// Model is a Bubble Tea component stacking fields vertically, one blank row
// apart, with labels in a left column.
type Model struct {
	Keys     KeyMap
	Style    Style
	Shaper   editor.Shaper
	Interval time.Duration

	fields     []Field
	labelWidth int
	focus      *widget.FocusCoordinator

	// Shared between copies of the model.
	s *state
}

type state struct {
	last    time.Time
	changes []widget.TextChanged
	views   []string
}

// New lays the fields out and focuses the first one. Each widget's surface
// is moved to where the field is drawn.
func New(fields ...Field) Model {
	m := Model{
		Keys:     DefaultKeyMap(),
		Style:    DefaultStyle(),
		Shaper:   editor.CellShaper{TabWidth: 4},
		Interval: DefaultFrameInterval,
		fields:   fields,
		focus:    &widget.FocusCoordinator{},
		s:        &state{views: make([]string, len(fields))},
	}
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > m.labelWidth {
			m.labelWidth = w
		}
	}

	y := 0
	for _, f := range fields {
		w := f.Widget
		x := 0
		if m.labelWidth > 0 {
			x = m.labelWidth + 1
		}
		w.Translator().Surface.Move(input.Point{X: float32(x), Y: float32(y)})
		y += fieldHeight(w) + 1

		prev := w.OnChange
		s := m.s
		w.OnChange = func(ev widget.TextChanged) {
			s.changes = append(s.changes, ev)
			if prev != nil {
				prev(ev)
			}
		}
	}
	if len(fields) > 0 {
		m.focus.Focus(fields[0].Widget)
	}
	return m
}

func fieldHeight(w *widget.Widget) int {
	h := int(w.Config().Editor.Height)
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) Fields() []Field { return m.fields }

// Focused returns the focused widget, or nil.
func (m Model) Focused() *widget.Widget { return m.focus.Focused() }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		at := time.Time(msg)
		var dt time.Duration
		if !m.s.last.IsZero() {
			dt = at.Sub(m.s.last)
		}
		m.s.last = at
		return m, tea.Batch(m.frame(dt, nil), m.tick())
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		return m, tea.Quit
	}
	if len(m.fields) > 1 {
		switch {
		case key.Matches(msg, m.Keys.NextField):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.Keys.PrevField):
			m.cycle(-1)
			return m, nil
		}
	}
	ev, ok := KeyEvent(msg)
	if !ok {
		return m, nil
	}
	return m, m.frame(0, []input.Event{ev})
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := PointerEvent(msg)
	if !ok {
		return m, nil
	}
	if ev.Kind == input.PointerDown && ev.Button == input.ButtonPrimary {
		target := m.fieldAt(ev.Pos)
		if target == nil {
			m.focus.Blur()
			return m, nil
		}
		m.focus.Focus(target)
	}
	return m, m.frame(0, []input.Event{ev})
}

func (m Model) fieldAt(p input.Point) *widget.Widget {
	for _, f := range m.fields {
		if f.Widget.Translator().Surface.Contains(p) {
			return f.Widget
		}
	}
	return nil
}

func (m Model) cycle(delta int) {
	cur := -1
	for i, f := range m.fields {
		if f.Widget == m.focus.Focused() {
			cur = i
			break
		}
	}
	n := len(m.fields)
	next := ((cur+delta)%n + n) % n
	if cur < 0 && delta < 0 {
		next = n - 1
	}
	m.focus.Focus(m.fields[next].Widget)
}

// frame runs one frame on every field, events going to the focused one, and
// turns text changes into messages.
func (m Model) frame(dt time.Duration, events []input.Event) tea.Cmd {
	focused := m.focus.Focused()
	for _, f := range m.fields {
		var evs []input.Event
		if f.Widget == focused {
			evs = events
		}
		f.Widget.Frame(m.Shaper, dt, evs)
	}
	if len(m.s.changes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.s.changes))
	for _, ev := range m.s.changes {
		msg := ChangedMsg(ev)
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.s.changes = m.s.changes[:0]
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	focused := m.focus.Focused()
	blocks := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		w := f.Widget
		if w.Redraw() || m.s.views[i] == "" {
			m.s.views[i] = RenderHighlighted(w, m.Shaper, m.Style, f.Highlighter)
			w.ClearRedraw()
		}
		if m.labelWidth == 0 {
			blocks = append(blocks, m.s.views[i])
			continue
		}
		ls := m.Style.Label
		if w == focused {
			ls = m.Style.LabelFocused
		}
		label := ls.Render(f.Label + strings.Repeat(" ", m.labelWidth-lipgloss.Width(f.Label)+1))
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, label, m.s.views[i]))
	}
	return strings.Join(blocks, "\n\n")
}
