package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/ledger"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	var b strings.Builder

	greeting := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s", a.ledger.Username()))
	tagline := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Render("Track your spendings, subscriptions and rewards in one place.")

	b.WriteString(components.ContentCard("", greeting+"\n"+tagline, cw))
	b.WriteString("\n")

	summary := ledger.Summarize(a.ledger.Spendings(), a.ledger.Budget())
	cards := []struct{ Label, Value string }{
		{"Budget", currency.Format(currency.ToDisplay(summary.Budget, cur), cur)},
		{"Spent", currency.Format(currency.ToDisplay(summary.Spent, cur), cur)},
		{"Subscriptions", fmt.Sprintf("%d active", len(a.ledger.Subscriptions()))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	lines := []string{
		keyStyle.Render("[enter]") + hintStyle.Render(" open budget dashboard"),
		keyStyle.Render("[I]") + hintStyle.Render("     sign in"),
		keyStyle.Render("[U]") + hintStyle.Render("     create an account"),
		keyStyle.Render("[A]") + hintStyle.Render("     talk to the assistant"),
	}
	b.WriteString(components.ContentCard("Get Started", strings.Join(lines, "\n"), cw))

	return b.String()
}
