package tui

import "github.com/charmbracelet/lipgloss"

var (
	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	objectiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("cyan"))

	durationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("120"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
