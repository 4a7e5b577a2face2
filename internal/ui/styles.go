package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0969DA") // GitHub blue
	accentColor  = lipgloss.Color("#2DA44E") // Green
	dimColor     = lipgloss.Color("#6E7681") // Gray

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	EventStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
