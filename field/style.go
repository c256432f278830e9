package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
//
// The zero Style renders plain text.
type Style struct {
	Prompt    lipgloss.Style
	Text      lipgloss.Style
	Delimiter lipgloss.Style
	Hint      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Text:      lipgloss.NewStyle(),
		Delimiter: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
