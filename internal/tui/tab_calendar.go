package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/cli"
	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/ledger"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	subs := a.ledger.Subscriptions()
	year, month := a.calYear, time.Month(a.calMonth)
	buckets := ledger.CalendarMonth(subs, year, month)
	var b strings.Builder

	// Header: month navigation + monthly burn
	monthStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	navStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	total := currency.Format(currency.ToDisplay(ledger.MonthlyTotal(subs), cur), cur)
	header := fmt.Sprintf("%s %s %s    monthly total %s",
		navStyle.Render("["),
		monthStyle.Render(cli.FormatMonth(year, month)),
		navStyle.Render("]"),
		totalStyle.Render(total))
	b.WriteString(components.ContentCard("", header, cw))
	b.WriteString("\n")

	// Calendar grid: 7 columns Sunday-first.
	innerW := components.CardInnerWidth(cw)
	colW := innerW / 7
	if colW < 4 {
		colW = 4
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	todayStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var grid strings.Builder
	for wd := 0; wd < 7; wd++ {
		grid.WriteString(headStyle.Render(fmt.Sprintf("%-*s", colW, cli.DayOfWeek(wd))))
	}
	grid.WriteString("\n")

	now := a.now()
	days := ledger.DaysIn(year, month)
	offset := ledger.FirstWeekday(year, month)
	col := 0
	for i := 0; i < offset; i++ {
		grid.WriteString(strings.Repeat(" ", colW))
		col++
	}
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%-*d", colW, day)
		style := dayStyle
		if sameDay(now, year, month, day) {
			style = todayStyle
		}
		if due := buckets[day]; len(due) > 0 {
			marker := lipgloss.NewStyle().Foreground(theme.Tag(due[0].Color)).Render("●")
			cell = fmt.Sprintf("%-2d%s%s", day, marker, strings.Repeat(" ", colW-3))
			if colW < 4 {
				cell = fmt.Sprintf("%-*d", colW, day)
			}
		}
		grid.WriteString(style.Render(cell))
		col++
		if col == 7 {
			grid.WriteString("\n")
			col = 0
		}
	}
	b.WriteString(components.ContentCard("", strings.TrimRight(grid.String(), "\n"), cw))
	b.WriteString("\n")

	// Due list for the displayed month.
	var due strings.Builder
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	for day := 1; day <= days; day++ {
		for _, s := range buckets[day] {
			marker := lipgloss.NewStyle().Foreground(theme.Tag(s.Color)).Render("●")
			fmt.Fprintf(&due, "%s %s %s  %s\n",
				marker,
				nameStyle.Render(fmt.Sprintf("%-20s", cli.Truncate(s.Service, 20))),
				amtStyle.Render(currency.Format(currency.ToDisplay(s.Amount, cur), cur)+"/mo"),
				amtStyle.Render(cli.FormatDate(s.NextPayment)))
		}
	}
	if due.Len() == 0 {
		due.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("No payments due this month."))
	}
	b.WriteString(components.ContentCard("Upcoming Payments", strings.TrimRight(due.String(), "\n"), cw))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render("[a]add subscription  [1]netflix  [2]spotify  [[]prev  []]next"))

	return b.String()
}

func sameDay(now time.Time, year int, month time.Month, day int) bool {
	return now.Year() == year && now.Month() == month && now.Day() == day
}
