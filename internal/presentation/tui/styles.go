package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#a78bfa")
	colorText   = lipgloss.Color("#cdd6f4")
	colorMuted  = lipgloss.Color("#7f849c")
	colorError  = lipgloss.Color("#f38ba8")
	colorOK     = lipgloss.Color("#a6e3a1")

	titleStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	valueStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	okStyle        = lipgloss.NewStyle().Foreground(colorOK)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	barFilledStyle = lipgloss.NewStyle().Foreground(colorAccent)
	barEmptyStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	sliderBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)
