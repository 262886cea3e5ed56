package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	accentHex     = "#5A56E0"
	backgroundHex = "#1E1E2E"
)

// Theme centralizes Lip Gloss styles for the date picker.
type Theme struct {
	Picker PickerTheme
	Footer FooterTheme
}

// PickerTheme styles the month grid and its controls.
type PickerTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Nav     lipgloss.Style
	Weekday lipgloss.Style
	Divider lipgloss.Style

	Day      lipgloss.Style
	Outside  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	InRange  lipgloss.Style
	Pending  lipgloss.Style
	Cursor   lipgloss.Style

	Toggle   lipgloss.Style
	ToggleOn lipgloss.Style
	Clear    lipgloss.Style
	Label    lipgloss.Style
	Input    lipgloss.Style
	Focused  lipgloss.Style
}

// FooterTheme groups styles used by the help and status lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// RangeFill blends the accent into the background, the terminal version of
// a half transparent selection.
func RangeFill() colorful.Color {
	accent, _ := colorful.Hex(accentHex)
	bg, _ := colorful.Hex(backgroundHex)
	return bg.BlendLab(accent, 0.5).Clamped()
}

// Default returns the built-in theme.
func Default() Theme {
	accent, _ := colorful.Hex(accentHex)

	return Theme{
		Picker: PickerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Nav:     lipgloss.NewStyle().Foreground(accent),
			Weekday: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")),
			InRange:  lipgloss.NewStyle().Background(RangeFill()),
			Pending:  lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")).Underline(true),
			Cursor:   lipgloss.NewStyle().Reverse(true),

			Toggle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			ToggleOn: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Clear:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Input:    lipgloss.NewStyle(),
			Focused:  lipgloss.NewStyle().Foreground(accent),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}
