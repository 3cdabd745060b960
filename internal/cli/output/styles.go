package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the colored styles used on terminals.
func DefaultStyles() *Styles {
	return &Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// PlainStyles returns styles that render text unchanged, for pipes and tests.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header1: plain,
		Header2: plain,
		Bold:    plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
	}
}
