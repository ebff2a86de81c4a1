package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dogyears/internal/ui"
)

// Styles are rebuilt from the ui theme by initTUIStyles.
var (
	cardStyle         lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	focusedLabelStyle lipgloss.Style
	optionStyle       lipgloss.Style
	selectedStyle     lipgloss.Style
	errorStyle        lipgloss.Style
	humanAgeStyle     lipgloss.Style
	factStyle         lipgloss.Style
	toastStyle        lipgloss.Style
	spinnerStyle      lipgloss.Style
	helpKeyStyle      lipgloss.Style
	helpDescStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds every style from the current ui theme. Run calls
// it again after InitTheme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(1, 3).
		Width(cardWidth)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	labelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	optionStyle = lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Accent)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error)
	humanAgeStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	factStyle = lipgloss.NewStyle().Foreground(t.Text).Italic(true).Width(cardWidth - 8)
	toastStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(t.Accent)
	helpKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(t.Dim)
}
