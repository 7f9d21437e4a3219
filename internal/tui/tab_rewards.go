package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

func (a App) renderRewardsTab(cw int) string {
	t := theme.Active
	rewards := a.ledger.Rewards()
	var b strings.Builder

	earned := 0
	for _, r := range rewards {
		if r.Earned {
			earned++
		}
	}

	cards := []struct{ Label, Value string }{
		{"Earned", fmt.Sprintf("%d", earned)},
		{"Locked", fmt.Sprintf("%d", len(rewards)-earned)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	earnedMark := lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("✓")
	lockedMark := lipgloss.NewStyle().Foreground(t.TextDim).Render("○")
	titleEarned := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	titleLocked := lipgloss.NewStyle().Foreground(t.TextMuted)
	descStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var list strings.Builder
	for _, r := range rewards {
		mark, title := lockedMark, titleLocked
		if r.Earned {
			mark, title = earnedMark, titleEarned
		}
		fmt.Fprintf(&list, "%s %s\n  %s\n",
			mark,
			title.Render(r.Title),
			descStyle.Render(r.Description))
	}
	b.WriteString(components.ContentCard("Achievements", strings.TrimRight(list.String(), "\n"), cw))

	return b.String()
}
