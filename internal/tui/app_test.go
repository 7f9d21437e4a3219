package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evalizada/manat/internal/ledger"
)

func newTestApp() App {
	a := NewApp(ledger.New())
	a.width = 100
	a.height = 40
	a.now = func() time.Time {
		return time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)
	}
	return a
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func TestTabJumpKeys(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"b", tabBudget},
		{"c", tabCalendar},
		{"y", tabHistory},
		{"r", tabRewards},
		{"p", tabProfile},
		{"x", tabSettings},
		{"h", tabHome},
	}
	a := newTestApp()
	for _, tc := range cases {
		a = press(t, a, tc.key)
		if a.activeTab != tc.want {
			t.Errorf("key %q: activeTab = %d, want %d", tc.key, a.activeTab, tc.want)
		}
	}
}

func TestArrowNavigationWraps(t *testing.T) {
	a := newTestApp()
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Fatalf("left from first tab: activeTab = %d, want %d", a.activeTab, tabSettings)
	}
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabHome {
		t.Fatalf("right from last tab: activeTab = %d, want %d", a.activeTab, tabHome)
	}
}

func TestQuickSpendingKeyAddsRecord(t *testing.T) {
	a := newTestApp()
	a.activeTab = tabBudget
	before := len(a.ledger.Spendings())

	a = press(t, a, "1")

	spendings := a.ledger.Spendings()
	if len(spendings) != before+1 {
		t.Fatalf("len(spendings) = %d, want %d", len(spendings), before+1)
	}
	if spendings[0].Category != "food" {
		t.Errorf("category = %q, want %q", spendings[0].Category, "food")
	}
}

func TestQuickSubscriptionKeyAddsRecord(t *testing.T) {
	a := newTestApp()
	a.activeTab = tabCalendar
	before := len(a.ledger.Subscriptions())

	a = press(t, a, "1")

	subs := a.ledger.Subscriptions()
	if len(subs) != before+1 {
		t.Fatalf("len(subs) = %d, want %d", len(subs), before+1)
	}
	if subs[0].Service != "Netflix" {
		t.Errorf("service = %q, want %q", subs[0].Service, "Netflix")
	}
}

func TestMonthNavigationWrapsYear(t *testing.T) {
	a := newTestApp()
	a.activeTab = tabCalendar
	a.calYear, a.calMonth = 2024, time.January

	a = press(t, a, "[")
	if a.calYear != 2023 || a.calMonth != time.December {
		t.Fatalf("prev from Jan 2024 = %d %v, want 2023 December", a.calYear, a.calMonth)
	}

	a.calYear, a.calMonth = 2024, time.December
	a = press(t, a, "]")
	if a.calYear != 2025 || a.calMonth != time.January {
		t.Fatalf("next from Dec 2024 = %d %v, want 2025 January", a.calYear, a.calMonth)
	}
}

func TestDialogOpenAndCancelLeavesLedgerUnchanged(t *testing.T) {
	a := newTestApp()
	a.activeTab = tabBudget
	beforeSpendings := len(a.ledger.Spendings())
	beforeCategories := len(a.ledger.Categories())

	a = press(t, a, "a")
	if a.form == nil || a.dialog != dialogAddSpending {
		t.Fatal("pressing a on the budget tab should open the add-spending dialog")
	}

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.form != nil || a.dialog != dialogNone {
		t.Fatal("esc should close the dialog")
	}
	if len(a.ledger.Spendings()) != beforeSpendings {
		t.Error("cancelled dialog must not add spendings")
	}
	if len(a.ledger.Categories()) != beforeCategories {
		t.Error("cancelled dialog must not add categories")
	}
}

func TestCtrlCCancelsDialogNotApp(t *testing.T) {
	a := newTestApp()
	a.activeTab = tabProfile
	a = press(t, a, "b")
	if a.form == nil {
		t.Fatal("pressing b on the profile tab should open the budget dialog")
	}

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	a = m.(App)
	if a.form != nil {
		t.Fatal("ctrl+c should cancel the open dialog")
	}
	if cmd != nil {
		t.Fatal("ctrl+c on a dialog must not quit the program")
	}
}

func TestChatOverlayRoundTrip(t *testing.T) {
	a := newTestApp()
	a = press(t, a, "A")
	if !a.chatOpen {
		t.Fatal("A should open the chat overlay")
	}

	for _, r := range "hello" {
		m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a = m.(App)
	}
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if cmd == nil {
		t.Fatal("sending a message should schedule a reply")
	}
	msgs := a.chat.Messages()
	if msgs[len(msgs)-1].Text != "hello" {
		t.Fatalf("last message = %q, want %q", msgs[len(msgs)-1].Text, "hello")
	}

	m, _ = a.Update(assistantReplyMsg{})
	a = m.(App)
	after := a.chat.Messages()
	if len(after) != len(msgs)+1 {
		t.Fatalf("len(messages) after reply = %d, want %d", len(after), len(msgs)+1)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.chatOpen {
		t.Fatal("esc should close the chat overlay")
	}
}

func TestBlankChatMessageNotSent(t *testing.T) {
	a := newTestApp()
	a = press(t, a, "A")
	before := len(a.chat.Messages())

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if got := len(a.chat.Messages()); got != before {
		t.Fatalf("len(messages) = %d, want %d", got, before)
	}
}

func TestNoticeClears(t *testing.T) {
	a := newTestApp()
	a.notice = "Spending added"
	m, _ := a.Update(clearNoticeMsg{})
	a = m.(App)
	if a.notice != "" {
		t.Fatalf("notice = %q, want empty", a.notice)
	}
}

func TestMonthHelpers(t *testing.T) {
	if y, m := prevMonth(2024, time.March); y != 2024 || m != time.February {
		t.Errorf("prevMonth(2024, March) = %d %v", y, m)
	}
	if y, m := nextMonth(2024, time.June); y != 2024 || m != time.July {
		t.Errorf("nextMonth(2024, June) = %d %v", y, m)
	}
}
