// Package tui provides the interactive Bubble Tea dashboard for manat.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/assistant"
	"github.com/evalizada/manat/internal/ledger"
	"github.com/evalizada/manat/internal/tui/components"
	"github.com/evalizada/manat/internal/tui/theme"
)

const (
	tabHome = iota
	tabBudget
	tabCalendar
	tabHistory
	tabRewards
	tabProfile
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// assistantReplyMsg lands one scheduled chat reply.
type assistantReplyMsg struct{}

// clearNoticeMsg expires the status bar notice.
type clearNoticeMsg struct{}

// App is the root Bubble Tea model. The ledger is the single owner of
// application state; every mutation happens synchronously in Update.
type App struct {
	ledger *ledger.Ledger
	chat   *assistant.Transcript

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Displayed month for the calendar and history tabs
	calYear   int
	calMonth  time.Month
	histYear  int
	histMonth time.Month

	// Modal dialog (huh form)
	dialog dialogKind
	form   *huh.Form
	vals   *formValues

	// Chat overlay
	chatOpen  bool
	chatInput chatInput

	now func() time.Time
}

// NewApp creates the TUI app model around an already-seeded ledger.
func NewApp(l *ledger.Ledger) App {
	now := time.Now()
	return App{
		ledger:    l,
		chat:      assistant.New(),
		calYear:   now.Year(),
		calMonth:  now.Month(),
		histYear:  now.Year(),
		histMonth: now.Month(),
		chatInput: newChatInput(),
		now:       time.Now,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case assistantReplyMsg:
		// The reply lands even if the chat overlay was closed meanwhile;
		// it is visible the next time the overlay opens.
		a.chat.Reply()
		return a, nil

	case clearNoticeMsg:
		a.notice = ""
		return a, nil

	case tea.KeyMsg:
		// Modal overlays see keys first; ctrl+c only quits from the
		// main view so it can cancel a dialog instead.
		if a.form != nil {
			return a.updateDialog(msg)
		}
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.chatOpen {
			return a.updateChat(msg)
		}
		return a.updateKey(msg)
	}

	// Forward everything else to the active overlay (cursor blinks, etc.)
	if a.form != nil {
		return a.updateDialog(msg)
	}
	if a.chatOpen {
		var cmd tea.Cmd
		a.chatInput.input, cmd = a.chatInput.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Per-tab actions take precedence over navigation keys.
	if model, cmd, handled := a.updateTabKey(key); handled {
		return model, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "A":
		a.chatOpen = true
		a.chatInput.input.Focus()
		return a, a.chatInput.input.Cursor.BlinkCmd()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// updateTabKey dispatches tab-local action keys. Returns handled=false for
// keys the active tab does not claim.
func (a App) updateTabKey(key string) (tea.Model, tea.Cmd, bool) {
	switch a.activeTab {

	case tabHome:
		switch key {
		case "I":
			return a.openDialog(dialogSignIn)
		case "U":
			return a.openDialog(dialogSignUp)
		case "enter":
			a.activeTab = tabBudget
			return a, nil, true
		}

	case tabBudget:
		switch key {
		case "a":
			return a.openDialog(dialogAddSpending)
		case "1":
			a.ledger.QuickSpending("food", a.now())
			return a, nil, true
		case "2":
			a.ledger.QuickSpending("taxi", a.now())
			return a, nil, true
		case "3":
			a.ledger.QuickSpending("coffee", a.now())
			return a, nil, true
		}

	case tabCalendar:
		switch key {
		case "a":
			return a.openDialog(dialogAddSubscription)
		case "1":
			a.ledger.QuickSubscription("netflix", a.now())
			return a, nil, true
		case "2":
			a.ledger.QuickSubscription("spotify", a.now())
			return a, nil, true
		case "[":
			a.calYear, a.calMonth = prevMonth(a.calYear, a.calMonth)
			return a, nil, true
		case "]":
			a.calYear, a.calMonth = nextMonth(a.calYear, a.calMonth)
			return a, nil, true
		}

	case tabHistory:
		switch key {
		case "[":
			a.histYear, a.histMonth = prevMonth(a.histYear, a.histMonth)
			return a, nil, true
		case "]":
			a.histYear, a.histMonth = nextMonth(a.histYear, a.histMonth)
			return a, nil, true
		}

	case tabProfile:
		switch key {
		case "n":
			return a.openDialog(dialogUsername)
		case "b":
			return a.openDialog(dialogBudget)
		case "g":
			return a.openDialog(dialogGoal)
		}

	case tabSettings:
		switch key {
		case "c":
			return a.openDialog(dialogCurrency)
		case "l":
			return a.openDialog(dialogLanguage)
		case "t":
			return a.openDialog(dialogTheme)
		}
	}

	return a, nil, false
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewDialog()
	}
	if a.chatOpen {
		return a.viewChat()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < minContentHeight {
		h = minContentHeight
	}
	msg := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(
		"\n  Terminal too narrow — manat needs at least 70 columns.\n")
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	section := func(b *strings.Builder, name string, binds [][2]string) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, bind := range binds {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(pad(bind[0], 12)))
			b.WriteString("  ")
			b.WriteString(descStyle.Render(bind[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	section(&b, "Navigation", [][2]string{
		{"h b c y r p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"[ ]", "Previous / Next month"},
	})
	section(&b, "Actions", [][2]string{
		{"a", "Add spending / subscription"},
		{"1 2 3", "Quick add"},
		{"n b g", "Edit name / budget / goal (Profile)"},
		{"c l t", "Currency / Language / Theme (Settings)"},
		{"I U", "Sign in / Sign up (Home)"},
		{"A", "AI assistant"},
		{"q", "Quit"},
	})
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.notice)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabHome:
		content = a.renderHomeTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	case tabRewards:
		content = a.renderRewardsTab(cw)
	case tabProfile:
		content = a.renderProfileTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewDialog() string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		a.form.View(),
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

// setNotice shows a transient message in the status bar.
func (a *App) setNotice(text string) tea.Cmd {
	a.notice = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// ─── Helpers ────────────────────────────────────────────────────

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
