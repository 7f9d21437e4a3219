package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, a
// transient notice on the right.
func RenderStatusBar(width int, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [A]assistant  [q]uit"
	right := ""
	if notice != "" {
		right = notice + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for range padding {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
