// Package theme defines color themes for the manat TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // main app background
	Surface      lipgloss.Color // card/panel backgrounds
	SurfaceHover lipgloss.Color // highlighted surface (selected row, today cell)
	Border       lipgloss.Color // subtle borders
	BorderAccent lipgloss.Color // accent-colored borders for focus states
	TextDim      lipgloss.Color // lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // primary content text
	Accent       lipgloss.Color // primary accent
	AccentBright lipgloss.Color // brighter accent for emphasis
	Green        lipgloss.Color
	Red          lipgloss.Color
	Orange       lipgloss.Color
	Yellow       lipgloss.Color
	Blue         lipgloss.Color
	Purple       lipgloss.Color
	Cyan         lipgloss.Color
}

// Active is the currently selected theme.
var Active = Dark

// Dark is the default theme, matching the app's dark blue-on-black look.
var Dark = Theme{
	Name:         "dark",
	Background:   lipgloss.Color("#0A0A0F"),
	Surface:      lipgloss.Color("#16161E"),
	SurfaceHover: lipgloss.Color("#24242E"),
	Border:       lipgloss.Color("#2E2E3A"),
	BorderAccent: lipgloss.Color("#2563EB"),
	TextDim:      lipgloss.Color("#4B4B58"),
	TextMuted:    lipgloss.Color("#9CA3AF"),
	TextPrimary:  lipgloss.Color("#F9FAFB"),
	Accent:       lipgloss.Color("#2563EB"),
	AccentBright: lipgloss.Color("#60A5FA"),
	Green:        lipgloss.Color("#22C55E"),
	Red:          lipgloss.Color("#EF4444"),
	Orange:       lipgloss.Color("#F97316"),
	Yellow:       lipgloss.Color("#EAB308"),
	Blue:         lipgloss.Color("#3B82F6"),
	Purple:       lipgloss.Color("#A855F7"),
	Cyan:         lipgloss.Color("#06B6D4"),
}

// Light is a bright variant for light terminals.
var Light = Theme{
	Name:         "light",
	Background:   lipgloss.Color("#F5F5F4"),
	Surface:      lipgloss.Color("#FFFFFF"),
	SurfaceHover: lipgloss.Color("#E7E5E4"),
	Border:       lipgloss.Color("#D6D3D1"),
	BorderAccent: lipgloss.Color("#2563EB"),
	TextDim:      lipgloss.Color("#A8A29E"),
	TextMuted:    lipgloss.Color("#57534E"),
	TextPrimary:  lipgloss.Color("#1C1917"),
	Accent:       lipgloss.Color("#2563EB"),
	AccentBright: lipgloss.Color("#1D4ED8"),
	Green:        lipgloss.Color("#15803D"),
	Red:          lipgloss.Color("#B91C1C"),
	Orange:       lipgloss.Color("#C2410C"),
	Yellow:       lipgloss.Color("#A16207"),
	Blue:         lipgloss.Color("#1D4ED8"),
	Purple:       lipgloss.Color("#7E22CE"),
	Cyan:         lipgloss.Color("#0E7490"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("4"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	AccentBright: lipgloss.Color("12"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Orange:       lipgloss.Color("3"),
	Yellow:       lipgloss.Color("3"),
	Blue:         lipgloss.Color("4"),
	Purple:       lipgloss.Color("5"),
	Cyan:         lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{Dark, Light, Terminal}

// ByName returns a theme by its name, defaulting to Dark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Dark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Tag returns the lipgloss color for a subscription display color tag.
func Tag(color string) lipgloss.Color {
	t := Active
	switch color {
	case "red":
		return t.Red
	case "green":
		return t.Green
	case "purple":
		return t.Purple
	case "yellow":
		return t.Yellow
	default:
		return t.Blue
	}
}
