package editor

import (
	"testing"

	"github.com/iw2rmb/inkwell/buffer"
)

func rowTexts(b *buffer.Buffer, lay Layout) []string {
	out := make([]string, len(lay.Rows))
	for i, r := range lay.Rows {
		out[i] = b.Line(r.Line).Text()[r.Start:r.End]
	}
	return out
}

func equalStrings(a, b []string) bool {
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

func TestLayout_WrapModes(t *testing.T) {
	b := buffer.New("hello brave world\nx", buffer.Attrs{})
	cases := []struct {
		name string
		wrap WrapMode
		want []string
	}{
		{"none", WrapNone, []string{"hello brave world", "x"}},
		{"word", WrapWord, []string{"hello ", "brave ", "world", "x"}},
		{"glyph", WrapGlyph, []string{"hello br", "ave worl", "d", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lay := computeLayout(b, CellShaper{}, 8, tc.wrap, AlignLeft)
			if got := rowTexts(b, lay); !equalStrings(got, tc.want) {
				t.Fatalf("rows=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestLayout_WordWrapFallsBackToGlyphForLongWords(t *testing.T) {
	b := buffer.New("abcdefghij", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 4, WrapWord, AlignLeft)
	want := []string{"abcd", "efgh", "ij"}
	if got := rowTexts(b, lay); !equalStrings(got, want) {
		t.Fatalf("rows=%q, want %q", got, want)
	}
}

func TestLayout_EmptyLinesGetARow(t *testing.T) {
	b := buffer.New("\n\n", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 10, WrapWord, AlignLeft)
	if len(lay.Rows) != 3 {
		t.Fatalf("rows=%d, want 3", len(lay.Rows))
	}
	if got := lay.Height(); got != 3 {
		t.Fatalf("height=%v, want 3", got)
	}
}

func TestLayout_Alignment(t *testing.T) {
	b := buffer.New("ab", buffer.Attrs{})
	cases := []struct {
		align Align
		want  float32
	}{
		{AlignLeft, 0},
		{AlignJustified, 0},
		{AlignCenter, 4},
		{AlignRight, 8},
		{AlignEnd, 8},
	}
	for _, tc := range cases {
		lay := computeLayout(b, CellShaper{}, 10, WrapNone, tc.align)
		if got := lay.Rows[0].X; got != tc.want {
			t.Fatalf("align=%v x=%v, want %v", tc.align, got, tc.want)
		}
	}
}

func TestLayout_JustifiedSpreadsInteriorSpaces(t *testing.T) {
	b := buffer.New("aa bb cc dd", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 8, WrapWord, AlignJustified)
	want := []string{"aa bb ", "cc dd"}
	if got := rowTexts(b, lay); !equalStrings(got, want) {
		t.Fatalf("rows=%q, want %q", got, want)
	}
	if got := lay.Rows[0].Width; got != 8 {
		t.Fatalf("justified width=%v, want 8", got)
	}
	if got := lay.XOf(buffer.Cursor{Index: 3}); got != 5 {
		t.Fatalf("x of bb=%v, want 5", got)
	}
	if got := lay.Hit(5, 0); got.Index != 3 {
		t.Fatalf("hit at 5=%+v, want index 3", got)
	}
	if w, ok := lay.Rows[0].Advance(2); !ok || w != 3 {
		t.Fatalf("gap advance=%v,%v, want 3,true", w, ok)
	}
	// The last row of a line is not stretched.
	if got := lay.Rows[1].Width; got != 5 {
		t.Fatalf("last row width=%v, want 5", got)
	}
}

func TestLayout_RowOfUsesAffinityAtWrapBoundary(t *testing.T) {
	b := buffer.New("abcdef", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 3, WrapGlyph, AlignLeft)

	if got := lay.RowOf(buffer.Cursor{Index: 3}); got != 1 {
		t.Fatalf("before row=%d, want 1", got)
	}
	if got := lay.RowOf(buffer.Cursor{Index: 3, Affinity: buffer.After}); got != 0 {
		t.Fatalf("after row=%d, want 0", got)
	}
	if got := lay.XOf(buffer.Cursor{Index: 3, Affinity: buffer.After}); got != 3 {
		t.Fatalf("after x=%v, want 3", got)
	}
	if got := lay.XOf(buffer.Cursor{Index: 3}); got != 0 {
		t.Fatalf("before x=%v, want 0", got)
	}
	// End of the last row keeps the last row regardless of affinity.
	if got := lay.RowOf(buffer.Cursor{Index: 6}); got != 1 {
		t.Fatalf("end row=%d, want 1", got)
	}
}

func TestLayout_HitClampsAndPicksNearestBoundary(t *testing.T) {
	b := buffer.New("abc\ndefgh", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 0, WrapNone, AlignLeft)

	cases := []struct {
		x, y float32
		want buffer.Cursor
	}{
		{0, 0, buffer.Cursor{}},
		{0.4, 0, buffer.Cursor{}},
		{0.6, 0, buffer.Cursor{Index: 1}},
		{99, 0, buffer.Cursor{Index: 3}},
		{-5, -5, buffer.Cursor{}},
		{2, 1.5, buffer.Cursor{Line: 1, Index: 2}},
		{99, 99, buffer.Cursor{Line: 1, Index: 5}},
	}
	for _, tc := range cases {
		if got := lay.Hit(tc.x, tc.y); got != tc.want {
			t.Fatalf("hit(%v,%v)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestLayout_HitEndOfWrappedRowHasAfterAffinity(t *testing.T) {
	b := buffer.New("abcdef", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 3, WrapGlyph, AlignLeft)

	got := lay.Hit(99, 0)
	want := buffer.Cursor{Index: 3, Affinity: buffer.After}
	if got != want {
		t.Fatalf("hit=%v, want %v", got, want)
	}
}

func TestLayout_WideClusters(t *testing.T) {
	b := buffer.New("a界b", buffer.Attrs{})
	lay := computeLayout(b, CellShaper{}, 0, WrapNone, AlignLeft)
	if got := lay.Rows[0].Width; got != 4 {
		t.Fatalf("width=%v, want 4", got)
	}
	// Right half of the wide cluster snaps after it.
	if got := lay.Hit(2.5, 0); got != (buffer.Cursor{Index: 4}) {
		t.Fatalf("hit=%v, want index 4", got)
	}
}

func TestCellShaper_TabStops(t *testing.T) {
	sh := CellShaper{TabWidth: 4}
	if got := sh.Advance("\t", 0); got != 4 {
		t.Fatalf("tab at 0=%v, want 4", got)
	}
	if got := sh.Advance("\t", 5); got != 3 {
		t.Fatalf("tab at 5=%v, want 3", got)
	}
}
