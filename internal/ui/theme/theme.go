package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — service colors, dark background
var (
	Primary   = lipgloss.Color("#2E7D32") // Service Green
	Secondary = lipgloss.Color("#1565C0") // Blue
	Accent    = lipgloss.Color("#C9A227") // Gold
	Success   = lipgloss.Color("#43A047") // Green
	Warning   = lipgloss.Color("#F9A825") // Amber
	Error     = lipgloss.Color("#C62828") // Red
	Text      = lipgloss.Color("#ECEFF1") // Near-white
	TextDim   = lipgloss.Color("#90A4AE") // Blue Grey
	BgCard    = lipgloss.Color("#1C2529") // Dark Slate
	Border    = lipgloss.Color("#37474F") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Notice = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// GradeColor maps a server grade category to its display color.
func GradeColor(grade string) color.Color {
	switch grade {
	case "отлично":
		return Success
	case "хорошо":
		return Secondary
	case "удовлетворительно":
		return Warning
	default:
		return Error
	}
}
