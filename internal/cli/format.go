// Package cli provides formatting and rendering utilities for terminal
// output outside the interactive TUI.
package cli

import (
	"fmt"
	"time"
)

// FormatPercent formats a percentage value with one decimal, e.g. "1.4%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonth renders a month header with the human month name, e.g.
// "November 2024".
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// DayOfWeek returns a 3-letter day abbreviation for a weekday column
// (0 = Sunday).
func DayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// Truncate shortens s to limit runes, ending with an ellipsis when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
