package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderProfileTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)

	goal := "not set"
	if g := a.ledger.Goal(); g > 0 {
		goal = currency.Format(currency.ToDisplay(g, cur), cur)
	}

	rows := []string{
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Username      "),
			valueStyle.Render(a.ledger.Username()),
			keyStyle.Render("[n]")),
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Monthly budget"),
			valueStyle.Render(currency.Format(currency.ToDisplay(a.ledger.Budget(), cur), cur)),
			keyStyle.Render("[b]")),
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Savings goal  "),
			valueStyle.Render(goal),
			keyStyle.Render("[g]")),
	}
	b.WriteString(components.ContentCard("Profile", strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	cards := []struct{ Label, Value string }{
		{"Spendings", fmt.Sprintf("%d", len(a.ledger.Spendings()))},
		{"Subscriptions", fmt.Sprintf("%d", len(a.ledger.Subscriptions()))},
		{"Categories", fmt.Sprintf("%d", len(a.ledger.Categories()))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))

	return b.String()
}
