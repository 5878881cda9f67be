package ui

import "github.com/charmbracelet/lipgloss"

// Centralized lipgloss styles for the console surface.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Bold(true).
			Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	AccentKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")) // Yellow

	TitleStyle = lipgloss.NewStyle().Bold(true)

	DescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dim gray

	RunningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // Cyan-blue
)
