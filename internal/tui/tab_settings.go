package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/config"
	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cur := a.ledger.DisplayCurrency()
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)

	rows := []string{
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Currency"),
			valueStyle.Render(fmt.Sprintf("%s (%s)", cur, currency.Symbol(cur))),
			keyStyle.Render("[c]")),
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Language"),
			valueStyle.Render(a.ledger.Language()),
			keyStyle.Render("[l]")),
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Theme   "),
			valueStyle.Render(a.ledger.Theme()),
			keyStyle.Render("[t]")),
	}
	b.WriteString(components.ContentCard("Settings", strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	path := config.Path()
	status := "not saved yet"
	if config.Exists() {
		status = "saved"
	}
	b.WriteString(components.ContentCard("Config File",
		dimStyle.Render(path)+"\n"+dimStyle.Render("status: "+status), cw))

	return b.String()
}
