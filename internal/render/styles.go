package render

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the report. PlainStyles
// returns zero-value styles, which render text unchanged, so every
// renderer works identically with color disabled.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Class    lipgloss.Style
	Stable   lipgloss.Style
	Unstable lipgloss.Style
	Neutral  lipgloss.Style
	Right    lipgloss.Style
	Left     lipgloss.Style
	Dim      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Class:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Stable:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48")),
		Unstable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Right:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Left:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func PlainStyles() Styles {
	return Styles{}
}

// ForColor picks the styles matching the color flag.
func ForColor(color bool) Styles {
	if color {
		return DefaultStyles()
	}
	return PlainStyles()
}
