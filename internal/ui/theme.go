// Package ui provides terminal presentation for the stackkit CLI: a
// lipgloss-based theme, TTY detection, and progress reporting with a plain
// text fallback for non-interactive sessions.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors holds the hex color palette used by the theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// defaultColors is the stackkit palette.
var defaultColors = Colors{
	Primary:   "#7C3AED",
	Secondary: "#06B6D4",
	Success:   "#10B981",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Muted:     "#6B7280",
}

// Theme bundles the color palette and the derived lipgloss styles. With
// NoColor set every style renders plain text.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// NewTheme creates a Theme. Pass noColor=true to disable all styling,
// typically from the --no-color flag or the STACKKIT_NO_COLOR variable.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor, Colors: defaultColors}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Title = plain
		t.Success = plain
		t.Warning = plain
		t.Error = plain
		t.Muted = plain
		t.Accent = plain
		return t
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Error))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Secondary))
	return t
}

// Progress creates progress indicators for long-running operations.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
