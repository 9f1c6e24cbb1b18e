package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3")).
			Padding(0, 1)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#1976D2"))

	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#66BB6A"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF5350"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	statusInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#29B6F6"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66BB6A"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF5350"))

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA726"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// statusStyle picks a style for a transaction status label.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return statusSuccessStyle
	case "failed", "cancelled":
		return statusErrorStyle
	default:
		return statusInfoStyle
	}
}
