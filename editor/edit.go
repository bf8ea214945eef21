package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/internal/grapheme"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// edit applies a mutating action and reports whether the text changed.
func (e *Editor) edit(a Action) bool {
	if e.opt.ReadOnly {
		if a.Kind == ActionCut {
			e.copySelection()
		}
		return false
	}
	switch a.Kind {
	case ActionInsert:
		if a.Rune == '\n' || a.Rune == '\r' {
			return e.insert("\n")
		}
		if a.Rune < 0x20 && a.Rune != '\t' {
			return false
		}
		return e.insert(string(a.Rune))
	case ActionInsertText:
		return e.insert(a.Text)
	case ActionEnter:
		return e.insert("\n")
	case ActionBackspace:
		if e.deleteSelection() {
			return true
		}
		prev := e.buf.PrevGrapheme(e.cursor)
		return e.remove(prev, e.cursor)
	case ActionDelete:
		if e.deleteSelection() {
			return true
		}
		next := e.buf.NextGrapheme(e.cursor)
		return e.remove(e.cursor, next)
	case ActionCut:
		e.copySelection()
		return e.deleteSelection()
	}
	return false
}

// insert replaces the selection, or inserts at the cursor, with text cut
// down to what MaxLines and MaxChars allow.
func (e *Editor) insert(text string) bool {
	text = newlineReplacer.Replace(text)
	start, end := e.cursor, e.cursor
	if r, ok := e.SelectionRange(); ok {
		start, end = r.Start, r.End
	}
	removed := e.buf.TextRange(start, end)

	if e.opt.MaxLines > 0 {
		room := e.opt.MaxLines - e.buf.LineCount() + strings.Count(removed, "\n")
		text = limitNewlines(text, room)
	}
	if e.opt.MaxChars > 0 {
		room := e.opt.MaxChars - e.buf.CharCount() + utf8.RuneCountInString(removed)
		text = limitRunes(text, room)
	}
	if text == "" && removed == "" {
		return false
	}

	e.cursor = e.buf.ReplaceRange(start, end, text)
	e.sel = buffer.NoSelection
	return true
}

func (e *Editor) deleteSelection() bool {
	r, ok := e.SelectionRange()
	if !ok {
		return false
	}
	e.cursor = e.buf.ReplaceRange(r.Start, r.End, "")
	e.sel = buffer.NoSelection
	return true
}

func (e *Editor) remove(start, end buffer.Cursor) bool {
	if buffer.SamePos(start, end) {
		return false
	}
	e.cursor = e.buf.ReplaceRange(start, end, "")
	return true
}

// limitNewlines keeps text up to, not including, newline number room+1.
func limitNewlines(text string, room int) string {
	if room < 0 {
		room = 0
	}
	idx := 0
	for n := 0; ; n++ {
		i := strings.IndexByte(text[idx:], '\n')
		if i < 0 {
			return text
		}
		if n == room {
			return text[:idx+i]
		}
		idx += i + 1
	}
}

// limitRunes keeps whole grapheme clusters of text while the codepoint count
// stays within room.
func limitRunes(text string, room int) string {
	if room <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= room {
		return text
	}
	n, cut := 0, 0
	for _, cl := range grapheme.Split(text) {
		c := utf8.RuneCountInString(cl)
		if n+c > room {
			break
		}
		n += c
		cut += len(cl)
	}
	return text[:cut]
}
