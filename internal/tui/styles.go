package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulcalc/internal/ui"
)

// styles groups the lipgloss styles of the interactive view, built from
// the active theme so NO_COLOR is honored.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	frame   lipgloss.Style
	product lipgloss.Style
	errText lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	theme := ui.GetCurrentTUITheme()
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		label: lipgloss.NewStyle().
			Foreground(theme.Text),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		product: lipgloss.NewStyle().
			Foreground(theme.Success),
		errText: lipgloss.NewStyle().
			Foreground(theme.Error),
		status: lipgloss.NewStyle().
			Foreground(theme.Dim),
		help: lipgloss.NewStyle().
			Foreground(theme.Dim).
			Italic(true),
	}
}
