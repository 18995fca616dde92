package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every lipgloss style the views use, derived from one
// catppuccin flavor. Rebuilt whenever the configured theme changes.
type Styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabGap      lipgloss.Style

	ReadoutIdle    lipgloss.Style
	ReadoutRunning lipgloss.Style
	ReadoutPaused  lipgloss.Style
	StateLine      lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
	Muted        lipgloss.Style
	Notes        lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Spark     lipgloss.Style

	Success   lipgloss.Style
	StatusErr lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	columnHeader lipgloss.Style

	// Gradient endpoints for the steep-target progress bar
	GradientStart string
	GradientEnd   string
}

// flavorFor maps a config theme name onto its catppuccin flavor,
// defaulting to mocha for anything unrecognized.
func flavorFor(theme string) catppuccin.Flavor {
	switch strings.ToLower(theme) {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// NewStyles builds the style set for the given theme name
func NewStyles(theme string) Styles {
	f := flavorFor(theme)

	text := lipgloss.Color(f.Text().Hex)
	subtext := lipgloss.Color(f.Subtext0().Hex)
	subtext1 := lipgloss.Color(f.Subtext1().Hex)
	overlay := lipgloss.Color(f.Overlay1().Hex)
	surface0 := lipgloss.Color(f.Surface0().Hex)
	surface1 := lipgloss.Color(f.Surface1().Hex)
	surface2 := lipgloss.Color(f.Surface2().Hex)
	base := lipgloss.Color(f.Base().Hex)
	mauve := lipgloss.Color(f.Mauve().Hex)
	green := lipgloss.Color(f.Green().Hex)
	peach := lipgloss.Color(f.Peach().Hex)
	red := lipgloss.Color(f.Red().Hex)
	teal := lipgloss.Color(f.Teal().Hex)

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(mauve),
		Status: lipgloss.NewStyle().Foreground(subtext),
		Error:  lipgloss.NewStyle().Foreground(red).Bold(true).Padding(1),
		Help:   lipgloss.NewStyle().Foreground(overlay),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Background(mauve).
			Foreground(base).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(overlay).
			Padding(0, 2),
		TabGap: lipgloss.NewStyle().Foreground(surface2),

		ReadoutIdle:    lipgloss.NewStyle().Bold(true).Foreground(text),
		ReadoutRunning: lipgloss.NewStyle().Bold(true).Foreground(green),
		ReadoutPaused:  lipgloss.NewStyle().Bold(true).Foreground(peach),
		StateLine:      lipgloss.NewStyle().Foreground(subtext1),

		SelectedItem: lipgloss.NewStyle().
			Background(surface1).
			Foreground(text).
			Bold(true),
		NormalItem: lipgloss.NewStyle().Foreground(text),
		Muted:      lipgloss.NewStyle().Foreground(overlay),
		Notes:      lipgloss.NewStyle().Foreground(subtext).Italic(true),

		StatLabel: lipgloss.NewStyle().Foreground(subtext1),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(teal),
		Spark:     lipgloss.NewStyle().Foreground(teal),

		Success:   lipgloss.NewStyle().Foreground(green),
		StatusErr: lipgloss.NewStyle().Foreground(red),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mauve).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(mauve),

		columnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(subtext1).
			Background(surface0),

		GradientStart: f.Green().Hex,
		GradientEnd:   f.Mauve().Hex,
	}
}

// ColumnHeader returns the column header style at the given width
func (s Styles) ColumnHeader(width int) lipgloss.Style {
	return s.columnHeader.Width(width)
}
