package widget

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/input"
)

// Frame runs one frame of the widget: the password mask comes off, input is
// translated and dispatched, history is recorded, the placeholder and the
// mask go back on, and a text change is reported. The renderer reads the
// widget afterwards.
//
// An unfocused widget only advances its timers.
func (w *Widget) Frame(sh editor.Shaper, dt time.Duration, events []input.Event) {
	l, ok := w.st.(*live)
	if !ok {
		w.tr.Tick(dt)
		return
	}
	ed := l.ed

	w.reveal(ed)
	if w.password != nil {
		sh = w.password.Shaper(sh)
	}

	edited := w.pollPaste(l, sh)
	for _, ev := range events {
		for _, cmd := range w.translate(ev, ed, sh) {
			if edited && (cmd.Kind == input.CommandUndo || cmd.Kind == input.CommandRedo) {
				// Undo has to see the edits made earlier in this frame.
				l.rec.Edited(ed.Lines(), ed.Cursor())
				edited = false
			}
			if w.run(l, sh, cmd) {
				edited = true
			}
		}
	}

	if edited {
		l.rec.Edited(ed.Lines(), ed.Cursor())
	}
	l.rec.Tick(dt)
	w.tr.Tick(dt)

	w.conceal(ed)
	w.notify()
}

func (w *Widget) translate(ev input.Event, ed *editor.Editor, sh editor.Shaper) []input.Command {
	switch ev := ev.(type) {
	case input.PointerEvent:
		return w.tr.Pointer(ev, ed.Layout(sh).Height())
	case input.KeyEvent:
		if cmd, ok := w.tr.Key(ev); ok {
			return []input.Command{cmd}
		}
	}
	return nil
}

// run executes one command and reports whether it was an edit to record.
func (w *Widget) run(l *live, sh editor.Shaper, cmd input.Command) bool {
	switch cmd.Kind {
	case input.CommandUndo, input.CommandRedo:
		if w.cfg.Editor.ReadOnly {
			return false
		}
		undo := l.rec.Undo
		if cmd.Kind == input.CommandRedo {
			undo = l.rec.Redo
		}
		if entry, ok := undo(); ok {
			l.ed.Restore(entry)
			if w.placeholder != nil {
				w.placeholder.Apply(l.ed)
			}
		}
		return false
	case input.CommandPaste:
		if w.paste == nil || w.cfg.Editor.ReadOnly {
			return false
		}
		l.pending = append(l.pending, w.paste.Submit())
		return false
	}
	if w.placeholder != nil && !w.cfg.Editor.ReadOnly && inserts(cmd.Action.Kind) {
		w.placeholder.Clear(l.ed)
	}
	eff := l.ed.Action(sh, cmd.Action)
	if !eff.Text {
		return false
	}
	w.textChanged(l.ed)
	// Deleting into the placeholder put it back: nothing to record.
	return w.placeholder == nil || !w.placeholder.Active()
}

func inserts(k editor.ActionKind) bool {
	switch k {
	case editor.ActionInsert, editor.ActionInsertText, editor.ActionEnter:
		return true
	}
	return false
}

// pollPaste inserts every paste whose clipboard read has finished.
func (w *Widget) pollPaste(l *live, sh editor.Shaper) bool {
	if w.paste == nil || len(l.pending) == 0 {
		return false
	}
	edited := false
	rest := l.pending[:0]
	for _, id := range l.pending {
		text, ok := w.paste.Poll(id)
		if !ok {
			rest = append(rest, id)
			continue
		}
		if text == "" {
			continue
		}
		if w.run(l, sh, input.Command{Kind: input.CommandAction, Action: editor.InsertText(text)}) {
			edited = true
		}
	}
	l.pending = rest
	return edited
}

// textChanged strips an active placeholder right after an edit that reached
// it, so history never sees placeholder text.
func (w *Widget) textChanged(ed *editor.Editor) {
	if w.placeholder != nil && w.placeholder.Active() {
		w.placeholder.TextChanged(ed, w.cfg.Editor.Attrs)
	}
}

func (w *Widget) notify() {
	text := w.Text()
	if text == w.lastText {
		return
	}
	w.lastText = text
	log.Debug().Uint64("widget", w.cfg.ID).Int("len", len(text)).Msg("text changed")
	if w.OnChange != nil {
		w.OnChange(TextChanged{ID: w.cfg.ID, Text: text})
	}
}
