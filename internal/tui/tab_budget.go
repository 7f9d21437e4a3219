package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/cli"
	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/ledger"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	spendings := a.ledger.Spendings()
	summary := ledger.Summarize(spendings, a.ledger.Budget())
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value string }{
		{"Total Budget", currency.Format(currency.ToDisplay(summary.Budget, cur), cur)},
		{"Total Spent", currency.Format(currency.ToDisplay(summary.Spent, cur), cur)},
		{"Remaining", currency.Format(currency.ToDisplay(summary.Remaining, cur), cur)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Usage bar
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 9 // room for the percent label
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Budget Usage", components.UsageBar(summary.PercentUsed, barW), cw))
	b.WriteString("\n")

	// Row 3: Recent spendings
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amtStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var list strings.Builder
	if len(spendings) == 0 {
		list.WriteString(dateStyle.Render("No spendings yet. Press [a] to add one."))
	}
	limit := 8
	if len(spendings) < limit {
		limit = len(spendings)
	}
	amtW := 10
	descW := innerW - amtW - 24
	if descW < 10 {
		descW = 10
	}
	for _, s := range spendings[:limit] {
		amount := currency.Format(currency.ToDisplay(s.Amount, cur), cur)
		fmt.Fprintf(&list, "%s %s %s %s\n",
			dateStyle.Render(cli.FormatDate(s.Date)),
			descStyle.Render(fmt.Sprintf("%-*s", descW, cli.Truncate(s.Description, descW))),
			catStyle.Render(fmt.Sprintf("%-10s", cli.Truncate(s.Category, 10))),
			amtStyle.Render(fmt.Sprintf("%*s", amtW, amount)))
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Recent Spendings (%d)", len(spendings)), strings.TrimRight(list.String(), "\n"), cw))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render("[a]add spending  [1]food  [2]taxi  [3]coffee"))

	return b.String()
}
