package widget

// FocusCoordinator keeps at most one widget focused: focusing a widget ends
// the session of the previously focused one first.
type FocusCoordinator struct {
	focused *Widget
}

// Focus moves focus to w. A nil w only blurs.
func (f *FocusCoordinator) Focus(w *Widget) {
	if f.focused == w {
		return
	}
	if f.focused != nil {
		f.focused.Unfocus()
	}
	f.focused = w
	if w != nil {
		w.Focus()
	}
}

// Blur unfocuses the focused widget, if any.
func (f *FocusCoordinator) Blur() { f.Focus(nil) }

func (f *FocusCoordinator) Focused() *Widget { return f.focused }
