package transform

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/editor"
)

func session(text string) *editor.Editor {
	return editor.New(buffer.New(text, buffer.Attrs{}), editor.Options{})
}

func TestPassword_RoundTrip(t *testing.T) {
	ed := session("hello")
	pw := NewPassword('●')

	pw.Hide(ed)
	if !pw.Hidden() {
		t.Fatalf("hidden=false after Hide")
	}
	if got := ed.Text(); got != "●●●●●" {
		t.Fatalf("masked=%q, want %q", got, "●●●●●")
	}

	// Grapheme 3 of the masked text.
	ed.SetCursor(buffer.Cursor{Index: 3 * len("●")})
	pw.Restore(ed)

	if pw.Hidden() {
		t.Fatalf("hidden=true after Restore")
	}
	if got := ed.Text(); got != "hello" {
		t.Fatalf("text=%q, want %q", got, "hello")
	}
	if got := ed.Cursor(); got != (buffer.Cursor{Index: 3}) {
		t.Fatalf("cursor=%+v, want index 3", got)
	}
}

func TestPassword_DefaultGlyph(t *testing.T) {
	if got := NewPassword(0).Glyph(); got != string(DefaultGlyph) {
		t.Fatalf("glyph=%q, want %q", got, string(DefaultGlyph))
	}
}

func TestPassword_CursorAndSelectionSurviveHide(t *testing.T) {
	ed := session("a\u00f1b\ncd")
	ed.SetCursor(buffer.Cursor{Line: 1, Index: 1})
	ed.SetSelection(buffer.Anchored(buffer.Cursor{Index: len("a\u00f1")}))
	pw := NewPassword('*')

	pw.Hide(ed)
	if got := ed.Text(); got != "***\n**" {
		t.Fatalf("masked=%q, want %q", got, "***\n**")
	}
	if got := ed.Cursor(); got != (buffer.Cursor{Line: 1, Index: 1}) {
		t.Fatalf("masked cursor=%+v, want 1:1", got)
	}
	if a, ok := ed.Selection().Anchor(); !ok || a != (buffer.Cursor{Index: 2}) {
		t.Fatalf("masked anchor=%+v,%v, want 0:2,true", a, ok)
	}

	pw.Restore(ed)
	if got := ed.Text(); got != "a\u00f1b\ncd" {
		t.Fatalf("text=%q, want %q", got, "a\u00f1b\ncd")
	}
	if a, ok := ed.Selection().Anchor(); !ok || a != (buffer.Cursor{Index: len("a\u00f1")}) {
		t.Fatalf("anchor=%+v,%v, want 0:%d,true", a, ok, len("a\u00f1"))
	}
}

func TestPassword_RealText(t *testing.T) {
	ed := session("s3cret")
	pw := NewPassword('•')

	if _, ok := pw.RealText(); ok {
		t.Fatalf("real text reported before Hide")
	}
	pw.Hide(ed)
	if got, ok := pw.RealText(); !ok || got != "s3cret" {
		t.Fatalf("real text=%q,%v, want %q,true", got, ok, "s3cret")
	}
}

func TestPassword_CombiningSequencesCountAsOneGlyph(t *testing.T) {
	ed := session("e\u0301x")
	ed.SetCursor(buffer.Cursor{Index: len("e\u0301")})
	pw := NewPassword('*')

	pw.Hide(ed)
	if got := ed.Text(); got != "**" {
		t.Fatalf("masked=%q, want %q", got, "**")
	}
	if got := ed.Cursor().Index; got != 1 {
		t.Fatalf("masked index=%d, want 1", got)
	}

	pw.Restore(ed)
	if got := ed.Cursor().Index; got != len("e\u0301") {
		t.Fatalf("index=%d, want %d", got, len("e\u0301"))
	}
}

func TestPassword_RestoreClampsPastEnd(t *testing.T) {
	ed := session("ab")
	pw := NewPassword('*')
	pw.Hide(ed)

	// The host appended glyphs the real text does not have.
	ed.SetText("*****")
	ed.SetCursor(buffer.Cursor{Index: 5})
	pw.Restore(ed)

	if got := ed.Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if got := ed.Cursor(); got != (buffer.Cursor{Index: 2}) {
		t.Fatalf("cursor=%+v, want index 2", got)
	}
}

func TestPassword_MaskKeepsStyles(t *testing.T) {
	red := buffer.Attrs{Color: "#ff0000"}
	line := buffer.NewLine("a\u00f1b", buffer.Span{Start: len("a"), End: len("a\u00f1"), Attrs: red})
	pw := NewPassword('●')

	got := pw.Mask([]buffer.Line{line})
	if len(got) != 1 {
		t.Fatalf("lines=%d, want 1", len(got))
	}
	g := len("●")
	want := []buffer.Span{{Start: g, End: 2 * g, Attrs: red}}
	if spans := got[0].Spans(); !reflect.DeepEqual(spans, want) {
		t.Fatalf("spans=%+v, want %+v", spans, want)
	}
}

func TestPassword_ShaperMeasuresGlyph(t *testing.T) {
	sh := NewPassword('*').Shaper(editor.CellShaper{})

	if got := sh.Advance("界", 0); got != 1 {
		t.Fatalf("advance(wide)=%v, want 1", got)
	}
	if got := sh.Advance("\t", 3); got != 1 {
		t.Fatalf("advance(tab)=%v, want 1", got)
	}
	if got := sh.LineHeight(); got != 1 {
		t.Fatalf("line height=%v, want 1", got)
	}
}

func TestPassword_HideAndRestoreAreIdempotent(t *testing.T) {
	ed := session("abc")
	pw := NewPassword('*')
	pw.Hide(ed)
	pw.Hide(ed)
	if got := ed.Text(); got != "***" {
		t.Fatalf("masked=%q, want %q", got, "***")
	}
	pw.Restore(ed)
	pw.Restore(ed)
	if got := ed.Text(); got != "abc" {
		t.Fatalf("text=%q, want %q", got, "abc")
	}
}
