// Package ux provides the terminal styling used by the borderline CLI.
package ux

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPrimary = lipgloss.Color("#20B9B4") // teal - headings
	colorSuccess = lipgloss.Color("#2CD7C7") // bright teal - wins, accepted guesses
	colorWarning = lipgloss.Color("#F4D03F") // amber - mistakes still within budget
	colorError   = lipgloss.Color("#E74C3C") // red - losses, validation failures
	colorMuted   = lipgloss.Color("#5C6B73") // gray - hints and counters
)

// Styles used by the CLI commands.
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	Success   = lipgloss.NewStyle().Foreground(colorSuccess)
	Warning   = lipgloss.NewStyle().Foreground(colorWarning)
	Error     = lipgloss.NewStyle().Foreground(colorError)
	Muted     = lipgloss.NewStyle().Foreground(colorMuted)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
)
