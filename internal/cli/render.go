package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/ledger"
)

var (
	colorBorder = lipgloss.Color("#2E2E3A")
	colorMuted  = lipgloss.Color("#9CA3AF")
	colorText   = lipgloss.Color("#F9FAFB")
	colorAccent = lipgloss.Color("#2563EB")
	colorGreen  = lipgloss.Color("#22C55E")
	colorRed    = lipgloss.Color("#EF4444")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	overStyle   = lipgloss.NewStyle().Foreground(colorRed)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(title))
}

// RenderSummary renders the non-interactive budget overview for the summary
// command: budget figures, recent spendings, and the subscription burn rate.
func RenderSummary(l *ledger.Ledger) string {
	cur := l.DisplayCurrency()
	sum := ledger.Summarize(l.Spendings(), l.Budget())

	var b strings.Builder
	b.WriteString(RenderTitle("manat — " + l.Username()))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Budget"))
	b.WriteString("\n")
	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", label)),
			valueStyle.Render(value))
	}
	line("Total budget", currency.FormatAmount(sum.Budget, cur))
	line("Total spent", currency.FormatAmount(sum.Spent, cur))

	remaining := currency.FormatAmount(sum.Remaining, cur)
	if sum.Remaining < 0 {
		remaining = overStyle.Render(remaining)
	} else {
		remaining = okStyle.Render(remaining)
	}
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", "Remaining")), remaining)
	line("Usage", FormatPercent(sum.PercentUsed))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Recent spendings"))
	b.WriteString("\n")
	spendings := l.Spendings()
	if len(spendings) == 0 {
		b.WriteString(labelStyle.Render("  none recorded\n"))
	}
	for i, s := range spendings {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "  %s  %s %s %s\n",
			labelStyle.Render(FormatDate(s.Date)),
			valueStyle.Render(fmt.Sprintf("%-24s", Truncate(s.Description, 24))),
			labelStyle.Render(fmt.Sprintf("%-14s", s.Category)),
			valueStyle.Render(currency.FormatAmount(s.Amount, cur)))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Subscriptions"))
	b.WriteString("\n")
	for _, s := range l.Subscriptions() {
		fmt.Fprintf(&b, "  %s  %s %s\n",
			labelStyle.Render(FormatDate(s.NextPayment)),
			valueStyle.Render(fmt.Sprintf("%-24s", Truncate(s.Service, 24))),
			valueStyle.Render(currency.FormatAmount(s.Amount, cur)))
	}
	line("Monthly total", currency.FormatAmount(ledger.MonthlyTotal(l.Subscriptions()), cur))

	return b.String()
}
