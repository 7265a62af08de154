package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulraj-lab/Focus-flow/internal/history"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			MarginLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginLeft(2)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginLeft(2)
)

var bandStyles = map[history.Band]lipgloss.Style{
	history.BandLow:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	history.BandFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	history.BandGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	history.BandExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
}
