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

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	year, month := a.histYear, time.Month(a.histMonth)
	stats := ledger.HistoryMonth(a.ledger.Spendings(), a.ledger.Subscriptions(), year, month)
	var b strings.Builder

	monthStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	navStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	header := fmt.Sprintf("%s %s %s",
		navStyle.Render("["),
		monthStyle.Render(cli.FormatMonth(year, month)),
		navStyle.Render("]"))
	b.WriteString(components.ContentCard("", header, cw))
	b.WriteString("\n")

	cards := []struct{ Label, Value string }{
		{"Spendings", currency.Format(currency.ToDisplay(stats.SpendingsTotal, cur), cur)},
		{"Subscriptions", currency.Format(currency.ToDisplay(stats.SubscriptionsTotal, cur), cur)},
		{"Combined", currency.Format(currency.ToDisplay(stats.CombinedTotal, cur), cur)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amtStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	subAmtStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	descW := innerW - 36
	if descW < 10 {
		descW = 10
	}

	var spent strings.Builder
	for _, s := range stats.Spendings {
		fmt.Fprintf(&spent, "%s %s %s %s\n",
			dateStyle.Render(cli.FormatDate(s.Date)),
			descStyle.Render(fmt.Sprintf("%-*s", descW, cli.Truncate(s.Description, descW))),
			metaStyle.Render(fmt.Sprintf("%-10s", cli.Truncate(s.Category, 10))),
			amtStyle.Render(fmt.Sprintf("%10s", currency.Format(currency.ToDisplay(s.Amount, cur), cur))))
	}
	if spent.Len() == 0 {
		spent.WriteString(emptyStyle.Render("No spendings in this month."))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Spendings (%d)", len(stats.Spendings)), strings.TrimRight(spent.String(), "\n"), cw))
	b.WriteString("\n")

	var paid strings.Builder
	for _, s := range stats.Subscriptions {
		marker := lipgloss.NewStyle().Foreground(theme.Tag(s.Color)).Render("●")
		fmt.Fprintf(&paid, "%s %s %s %s\n",
			dateStyle.Render(cli.FormatDate(s.NextPayment)),
			marker,
			descStyle.Render(fmt.Sprintf("%-*s", descW, cli.Truncate(s.Service, descW))),
			subAmtStyle.Render(fmt.Sprintf("%10s", currency.Format(currency.ToDisplay(s.Amount, cur), cur))))
	}
	if paid.Len() == 0 {
		paid.WriteString(emptyStyle.Render("No subscription payments in this month."))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Subscriptions (%d)", len(stats.Subscriptions)), strings.TrimRight(paid.String(), "\n"), cw))
	b.WriteString("\n")

	b.WriteString(emptyStyle.Render("[[]prev month  []]next month"))

	return b.String()
}
