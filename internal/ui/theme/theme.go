package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/periodic"
)

// Color palette, dark chemistry-lab look
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#34D399") // Emerald
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Category colors follow the web app's legend: one hue per chemical family.
var categoryColors = map[periodic.Category]color.Color{
	periodic.CategoryAlkaliMetal:    lipgloss.Color("#EF4444"), // red
	periodic.CategoryAlkalineEarth:  lipgloss.Color("#F97316"), // orange
	periodic.CategoryTransition:     lipgloss.Color("#EAB308"), // yellow
	periodic.CategoryPostTransition: lipgloss.Color("#22C55E"), // green
	periodic.CategoryMetalloid:      lipgloss.Color("#14B8A6"), // teal
	periodic.CategoryNonmetal:       lipgloss.Color("#3B82F6"), // blue
	periodic.CategoryNobleGas:       lipgloss.Color("#A855F7"), // purple
	periodic.CategoryLanthanide:     lipgloss.Color("#EC4899"), // pink
	periodic.CategoryActinide:       lipgloss.Color("#F43F5E"), // rose
	periodic.CategoryUnknown:        lipgloss.Color("#64748B"), // gray
}

// CategoryColor returns the legend color for a chemical family.
func CategoryColor(c periodic.Category) color.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return TextDim
}

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
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
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

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
