package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandColor = lipgloss.Color("#8b5cf6")
	mutedColor = lipgloss.Color("#64748b")

	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	helpStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
