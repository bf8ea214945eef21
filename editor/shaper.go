package editor

import (
	"github.com/chewxy/math32"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Shaper is the live font-shaping context an editing action is laid out
// with. Implementations measure one grapheme cluster at a time.
type Shaper interface {
	// Advance returns the horizontal advance of cluster when it starts at x
	// on its visual row. x matters only for tab stops.
	Advance(cluster string, x float32) float32
	// LineHeight is the height of one visual row.
	LineHeight() float32
}

// CellShaper measures text in terminal cells: every row is one cell high and
// clusters are as wide as the terminal renders them.
type CellShaper struct {
	TabWidth int
}

func (s CellShaper) Advance(cluster string, x float32) float32 {
	if cluster == "\t" {
		return float32(tabAdvance(int(math32.Floor(x)), s.TabWidth))
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return float32(w)
}

func (CellShaper) LineHeight() float32 { return 1 }

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
