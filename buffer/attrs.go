package buffer

import "github.com/charmbracelet/lipgloss"

// Weight is a CSS-style font weight.
type Weight uint16

const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// Attrs is the style applied to a span of text. It is comparable so spans can
// be merged and tested by value.
//
// Colors are lipgloss color strings ("#rrggbb" or an ANSI index); empty means
// inherit from the host.
type Attrs struct {
	Family     string
	Color      string
	Background string
	Weight     Weight
	Italic     bool
	Underline  bool
	Size       float32
}

// Lipgloss converts a to a terminal style.
func (a Attrs) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	if a.Color != "" {
		s = s.Foreground(lipgloss.Color(a.Color))
	}
	if a.Background != "" {
		s = s.Background(lipgloss.Color(a.Background))
	}
	if a.Weight >= 600 {
		s = s.Bold(true)
	} else if a.Weight != 0 && a.Weight < 400 {
		s = s.Faint(true)
	}
	if a.Italic {
		s = s.Italic(true)
	}
	if a.Underline {
		s = s.Underline(true)
	}
	return s
}

// TextSpan is a run of text sharing one style. It is the unit of rich text
// exchanged with SetRichText and TextSpans.
type TextSpan struct {
	Text  string
	Attrs Attrs
}
