package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Help    lipgloss.Style
	Status  lipgloss.Style
	PegName lipgloss.Style
	Disk    lipgloss.Style
	Pole    lipgloss.Style
	Card    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Italic(true),
		PegName: lipgloss.NewStyle().Bold(true),
		Disk:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Pole:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
