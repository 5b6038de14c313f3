package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#58A6FF")
	colorAccent  = lipgloss.Color("#3FB950")
	colorMuted   = lipgloss.Color("#8B949E")
	colorError   = lipgloss.Color("#E74C3C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	sleepStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	energyStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// Confirmation formats a success acknowledgment.
func Confirmation(msg string) string {
	return successStyle.Render(msg)
}

// Notice formats a failure notice.
func Notice(msg string) string {
	return errorStyle.Render(msg)
}
