package ledger

import (
	"testing"
	"time"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func spending(category string, amount float64, date time.Time) model.Spending {
	return model.Spending{
		ID:          model.NewID(),
		Category:    category,
		Amount:      currency.Amount(amount),
		Date:        date,
		Description: category,
	}
}

func TestNew_SeededDefaults(t *testing.T) {
	l := New()

	if l.Username() != "User" {
		t.Errorf("Username = %q, want User", l.Username())
	}
	if l.Budget() != 5000 {
		t.Errorf("Budget = %v, want 5000", l.Budget())
	}
	if l.Goal() != 0 {
		t.Errorf("Goal = %v, want 0 (unset)", l.Goal())
	}
	if l.DisplayCurrency() != currency.USD {
		t.Errorf("DisplayCurrency = %v, want USD", l.DisplayCurrency())
	}
	if n := len(l.Spendings()); n != 3 {
		t.Errorf("seed spendings = %d, want 3", n)
	}
	if n := len(l.Subscriptions()); n != 2 {
		t.Errorf("seed subscriptions = %d, want 2", n)
	}
	if n := len(l.Categories()); n != 5 {
		t.Errorf("seed categories = %d, want 5", n)
	}
	if n := len(l.Rewards()); n != 6 {
		t.Errorf("seed rewards = %d, want 6", n)
	}
}

func TestAddSpending_PrependsMostRecentFirst(t *testing.T) {
	l := New()
	base := len(l.Spendings())

	first := spending("food", 10, day(2025, time.January, 1))
	second := spending("taxi", 20, day(2025, time.January, 2))
	l.AddSpending(first)
	l.AddSpending(second)

	got := l.Spendings()
	if len(got) != base+2 {
		t.Fatalf("len = %d, want %d", len(got), base+2)
	}
	if got[0].ID != second.ID {
		t.Errorf("newest record not first: got %q", got[0].Description)
	}
	if got[1].ID != first.ID {
		t.Errorf("second newest not in position 1")
	}
}

func TestSpendings_SnapshotIsIndependent(t *testing.T) {
	l := New()
	snap := l.Spendings()
	snap[0].Description = "mutated"

	if l.Spendings()[0].Description == "mutated" {
		t.Error("mutating a snapshot leaked into ledger state")
	}
}

func TestAddCategory_NormalizesAndDeduplicates(t *testing.T) {
	l := New()

	name, added := l.AddCategory("  Snacks ")
	if !added || name != "snacks" {
		t.Errorf("AddCategory(Snacks) = (%q, %v), want (snacks, true)", name, added)
	}
	want := []string{"food", "taxi", "coffee", "shopping", "entertainment", "snacks"}
	got := l.Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Re-adding an existing category leaves the set unchanged.
	if _, added := l.AddCategory("food"); added {
		t.Error("AddCategory(food) reported a change for a duplicate")
	}
	if n := len(l.Categories()); n != len(want) {
		t.Errorf("categories grew to %d after duplicate add", n)
	}
}

func TestAddCategory_EmptyRejected(t *testing.T) {
	l := New()
	if _, added := l.AddCategory("   "); added {
		t.Error("blank category was added")
	}
}

func TestAddService_CaseSensitive(t *testing.T) {
	l := New()

	if _, added := l.AddService("Netflix"); added {
		t.Error("duplicate service Netflix was added")
	}
	name, added := l.AddService(" netflix ")
	if !added || name != "netflix" {
		t.Errorf("AddService(netflix) = (%q, %v), want (netflix, true): check is case-sensitive", name, added)
	}
}

func TestSetBudget_RejectsNonPositive(t *testing.T) {
	l := New()
	for _, v := range []float64{0, -1} {
		if err := l.SetBudget(currency.Amount(v)); err == nil {
			t.Errorf("SetBudget(%v) accepted", v)
		}
	}
	if err := l.SetBudget(1200); err != nil {
		t.Fatalf("SetBudget(1200): %v", err)
	}
	if l.Budget() != 1200 {
		t.Errorf("Budget = %v, want 1200", l.Budget())
	}
}

func TestSetUsername_TrimsAndRejectsEmpty(t *testing.T) {
	l := New()
	if err := l.SetUsername("  "); err == nil {
		t.Error("blank username accepted")
	}
	if err := l.SetUsername(" Ayan "); err != nil {
		t.Fatalf("SetUsername: %v", err)
	}
	if l.Username() != "Ayan" {
		t.Errorf("Username = %q, want Ayan", l.Username())
	}
}

func TestSetCurrency(t *testing.T) {
	l := New()
	if err := l.SetCurrency(currency.AZN); err != nil {
		t.Fatalf("SetCurrency(AZN): %v", err)
	}
	if err := l.SetCurrency(currency.Currency("EUR")); err == nil {
		t.Error("unknown currency accepted")
	}
	if l.DisplayCurrency() != currency.AZN {
		t.Errorf("DisplayCurrency = %v, want AZN (failed set must not clobber)", l.DisplayCurrency())
	}
}

func TestQuickSpending_KnownCategoryBand(t *testing.T) {
	l := New()
	now := day(2025, time.March, 10)

	for range 20 {
		s := l.QuickSpending("coffee", now)
		if s.Amount < 3 || s.Amount > 10 {
			t.Fatalf("coffee quick amount %v outside [3,10]", s.Amount)
		}
		if s.Description != "Coffee Purchase" {
			t.Fatalf("Description = %q", s.Description)
		}
		if !s.Date.Equal(now) {
			t.Fatalf("Date = %v, want %v", s.Date, now)
		}
	}
}

func TestQuickSpending_UnknownCategoryFlatAmount(t *testing.T) {
	l := New()
	s := l.QuickSpending("books", day(2025, time.March, 10))
	if s.Amount != 20 {
		t.Errorf("unknown category amount = %v, want 20", s.Amount)
	}
	if got := l.Spendings()[0].ID; got != s.ID {
		t.Error("quick spending was not prepended")
	}
}

func TestQuickSubscription(t *testing.T) {
	l := New()
	now := day(2025, time.March, 10)

	s := l.QuickSubscription("netflix", now)
	if s.Amount != 15.99 || s.Color != "red" || s.Service != "Netflix" {
		t.Errorf("netflix quick sub = %+v", s)
	}

	other := l.QuickSubscription("hulu", now)
	if other.Amount != 10.99 || other.Color != "blue" {
		t.Errorf("unknown service quick sub = %+v", other)
	}
}
