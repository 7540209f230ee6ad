package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and styles for terminal output.
type Theme struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color

	// Section styles
	HeaderStyle lipgloss.Style
	LabelStyle  lipgloss.Style
	ValueStyle  lipgloss.Style
	IndexStyle  lipgloss.Style
	ActionStyle lipgloss.Style

	// Outcome styles
	FoundStyle    lipgloss.Style
	NotFoundStyle lipgloss.Style
}

// DefaultTheme returns a theme with default colors and styles.
func DefaultTheme() *Theme {
	theme := &Theme{
		Primary: lipgloss.Color("#7AA2F7"),
		Success: lipgloss.Color("#9ECE6A"),
		Warning: lipgloss.Color("#E0AF68"),
		Danger:  lipgloss.Color("#F7768E"),
		Muted:   lipgloss.Color("#565F89"),
	}

	theme.HeaderStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.LabelStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.ValueStyle = lipgloss.NewStyle().
		Foreground(theme.Primary)

	theme.IndexStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.ActionStyle = lipgloss.NewStyle()

	theme.FoundStyle = lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true)

	theme.NotFoundStyle = lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true)

	return theme
}
