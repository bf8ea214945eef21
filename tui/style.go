package tui

import "github.com/charmbracelet/lipgloss"

// Style controls how fields are drawn. Span styles from the text are drawn
// underneath Selection and Cursor.
type Style struct {
	Label        lipgloss.Style
	LabelFocused lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label:        label,
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:         lipgloss.NewStyle(),
		Selection:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
	}
}
