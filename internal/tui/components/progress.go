package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/tui/theme"
)

// UsageBar renders the budget usage bar. The bar fill is clamped to the
// available width, but the percentage label stays unclamped so overspend
// reads as e.g. "120.0%".
func UsageBar(percentUsed float64, width int) string {
	t := theme.Active
	if width < 4 {
		width = 4
	}

	frac := percentUsed / 100
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	barColor := ColorForPct(percentUsed)
	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.1f%%", percentUsed))
}

// ColorForPct returns green/yellow/orange/red by budget utilization.
func ColorForPct(percentUsed float64) lipgloss.Color {
	t := theme.Active
	switch {
	case percentUsed >= 100:
		return t.Red
	case percentUsed >= 75:
		return t.Orange
	case percentUsed >= 50:
		return t.Yellow
	default:
		return t.Green
	}
}
