package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)

	headerStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("252"))
	headerCursorStyle = headerStyle.Foreground(lipgloss.Color("212")).Underline(true)

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle   = cellStyle.Reverse(true)
	selectedStyle = cellStyle.Background(lipgloss.Color("238"))
	editingStyle  = cellStyle.Foreground(lipgloss.Color("229"))

	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle = menuItemStyle.Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("245"))

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginTop(1)
	toastColors = map[string]lipgloss.Color{
		"error":   lipgloss.Color("203"),
		"success": lipgloss.Color("78"),
		"warning": lipgloss.Color("214"),
	}

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
