package tui

import "github.com/charmbracelet/lipgloss"

// Studio palette: pink accent for the brand, green for running stages,
// orange frame around the finished bundle.
const (
	colorAccent = "#FF6AC1"
	colorStage  = "#3DDC97"
	colorFault  = "#F25F5C"
	colorMuted  = "#767676"
	colorInk    = "#FAFAFA"
	colorFrame  = "#FF8F6B"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)).
		MarginTop(1).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colorStage))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorFault))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colorFrame)).
		Padding(0, 2)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorInk)).
		Background(lipgloss.Color(colorAccent)).
		Padding(0, 1)
)
