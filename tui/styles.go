package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colourRed      = "#f38ba8"
	colourGreen    = "#a6e3a1"
	colourBlue     = "#89b4fa"
	colourText     = "#cdd6f4"
	colourSubtext0 = "#a6adc8"
	colourOverlay0 = "#6c7086"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourBlue)).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourSubtext0))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colourText)).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourRed))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourGreen))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colourOverlay0)).
			MarginTop(1)

	// Input borders follow the field state.
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colourOverlay0)).
			Padding(0, 1).
			Width(40)
	inputErrorStyle   = inputStyle.BorderForeground(lipgloss.Color(colourRed))
	inputSuccessStyle = inputStyle.BorderForeground(lipgloss.Color(colourGreen))
)
