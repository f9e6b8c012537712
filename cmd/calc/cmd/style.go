package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Error   lipgloss.Style
	Prompt  lipgloss.Style
	Kind    lipgloss.Style
	Lexeme  lipgloss.Style
	Muted   lipgloss.Style
	Caret   lipgloss.Style
	Heading lipgloss.Style
}

// NewStyles returns colored styles, or plain ones that render text unchanged.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Error:   plain,
			Prompt:  plain,
			Kind:    plain.Width(8),
			Lexeme:  plain,
			Muted:   plain,
			Caret:   plain,
			Heading: plain,
		}
	}
	return Styles{
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Kind:    lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("13")),
		Lexeme:  lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Caret:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}
