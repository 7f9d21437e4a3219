// Package ledger holds the application state: spending and subscription
// collections, the category and service sets, and the profile scalars. The
// Ledger is the single owner of mutable state; views read snapshots through
// the accessor methods and the pure aggregation functions in this package.
package ledger

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/model"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNonPositive     = errors.New("value must be greater than zero")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Ledger is the top-level state holder.
type Ledger struct {
	username string
	budget   currency.Amount
	goal     currency.Amount // 0 means unset
	display  currency.Currency
	language string
	theme    string

	spendings     []model.Spending
	subscriptions []model.Subscription
	categories    []string
	services      []string
	rewards       []model.Reward
}

// New returns a ledger populated with the seeded defaults. A process restart
// always starts from this state; nothing is persisted.
func New() *Ledger {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	return &Ledger{
		username:   "User",
		budget:     5000,
		goal:       0,
		display:    currency.USD,
		language:   "english",
		theme:      "dark",
		categories: []string{"food", "taxi", "coffee", "shopping", "entertainment"},
		services:   []string{"Netflix", "Spotify", "YouTube Premium", "Apple Music"},
		spendings: []model.Spending{
			{ID: model.NewID(), Category: "food", Amount: 45.50, Date: day(2024, time.November, 14), Description: "Grocery Shopping"},
			{ID: model.NewID(), Category: "coffee", Amount: 5.75, Date: day(2024, time.November, 14), Description: "Morning Coffee"},
			{ID: model.NewID(), Category: "taxi", Amount: 18.20, Date: day(2024, time.November, 13), Description: "Ride to Office"},
		},
		subscriptions: []model.Subscription{
			{ID: model.NewID(), Service: "Netflix", Amount: 15.99, NextPayment: day(2024, time.November, 17), Color: "red"},
			{ID: model.NewID(), Service: "Spotify", Amount: 9.99, NextPayment: day(2024, time.November, 16), Color: "green"},
		},
		rewards: []model.Reward{
			{ID: 1, Title: "7 Day Strike", Description: "Track your expenses for 7 consecutive days", Earned: true},
			{ID: 2, Title: "Master of Budgeting", Description: "Stay within budget for an entire month", Earned: true},
			{ID: 3, Title: "Savings Champion", Description: "Save $1000 in a single month", Earned: false},
			{ID: 4, Title: "Category Expert", Description: "Add 10 different spending categories", Earned: false},
			{ID: 5, Title: "Subscription Master", Description: "Track 5 active subscriptions", Earned: false},
			{ID: 6, Title: "Monthly Warrior", Description: "Complete 30 days of expense tracking", Earned: false},
		},
	}
}

// ─── Accessors ──────────────────────────────────────────────────

func (l *Ledger) Username() string                    { return l.username }
func (l *Ledger) Budget() currency.Amount             { return l.budget }
func (l *Ledger) Goal() currency.Amount               { return l.goal }
func (l *Ledger) DisplayCurrency() currency.Currency  { return l.display }
func (l *Ledger) Language() string                    { return l.language }
func (l *Ledger) Theme() string                       { return l.theme }

// Spendings returns a snapshot of the spending collection, most recent first.
func (l *Ledger) Spendings() []model.Spending {
	out := make([]model.Spending, len(l.spendings))
	copy(out, l.spendings)
	return out
}

// Subscriptions returns a snapshot of the subscription collection.
func (l *Ledger) Subscriptions() []model.Subscription {
	out := make([]model.Subscription, len(l.subscriptions))
	copy(out, l.subscriptions)
	return out
}

// Categories returns the category set in insertion order.
func (l *Ledger) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}

// Services returns the service set in insertion order.
func (l *Ledger) Services() []string {
	out := make([]string, len(l.services))
	copy(out, l.services)
	return out
}

// Rewards returns the static reward list.
func (l *Ledger) Rewards() []model.Reward {
	out := make([]model.Reward, len(l.rewards))
	copy(out, l.rewards)
	return out
}

// ─── Mutations ──────────────────────────────────────────────────

// AddSpending prepends a finished spending record.
func (l *Ledger) AddSpending(s model.Spending) {
	l.spendings = append([]model.Spending{s}, l.spendings...)
}

// AddSubscription prepends a finished subscription record.
func (l *Ledger) AddSubscription(s model.Subscription) {
	l.subscriptions = append([]model.Subscription{s}, l.subscriptions...)
}

// AddCategory normalizes name (trim, lowercase) and appends it to the
// category set if not already present. Returns the normalized name and
// whether the set changed.
func (l *Ledger) AddCategory(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	for _, c := range l.categories {
		if c == name {
			return name, false
		}
	}
	l.categories = append(l.categories, name)
	return name, true
}

// AddService trims name and appends it to the service set if not already
// present. The membership check is case-sensitive; the name keeps its case.
func (l *Ledger) AddService(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, s := range l.services {
		if s == name {
			return name, false
		}
	}
	l.services = append(l.services, name)
	return name, true
}

// SetUsername updates the profile name. Empty names are rejected.
func (l *Ledger) SetUsername(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	l.username = name
	return nil
}

// SetBudget updates the monthly budget. The amount is canonical and must be
// positive.
func (l *Ledger) SetBudget(a currency.Amount) error {
	if a <= 0 {
		return ErrNonPositive
	}
	l.budget = a
	return nil
}

// SetGoal updates the savings goal. The amount is canonical and must be
// positive; a goal is cleared only by process restart.
func (l *Ledger) SetGoal(a currency.Amount) error {
	if a <= 0 {
		return ErrNonPositive
	}
	l.goal = a
	return nil
}

// SetCurrency selects the display currency.
func (l *Ledger) SetCurrency(c currency.Currency) error {
	if !c.Valid() {
		return ErrUnknownCurrency
	}
	l.display = c
	return nil
}

// SetLanguage selects the UI language tag.
func (l *Ledger) SetLanguage(lang string) { l.language = lang }

// SetTheme selects the UI theme tag.
func (l *Ledger) SetTheme(theme string) { l.theme = theme }

// ─── Quick add ──────────────────────────────────────────────────

// quickAmounts gives the randomized amount band per quick-add category.
var quickAmounts = map[string][2]float64{
	"food":   {25, 50},
	"taxi":   {10, 30},
	"coffee": {3, 7},
}

// QuickSpending builds a synthetic spending for a panel category and prepends
// it. Amounts are drawn from a per-category band; unknown categories get a
// flat 20.
func (l *Ledger) QuickSpending(category string, now time.Time) model.Spending {
	amount := currency.Amount(20)
	if band, ok := quickAmounts[category]; ok {
		amount = currency.Amount(band[0] + rand.Float64()*band[1])
	}

	s := model.Spending{
		ID:          model.NewID(),
		Category:    category,
		Amount:      amount,
		Date:        model.Date(now),
		Description: titleCase(category) + " Purchase",
	}
	l.AddSpending(s)
	return s
}

// quickServices maps panel services to their fixed price and color tag.
var quickServices = map[string]struct {
	amount currency.Amount
	color  string
}{
	"netflix": {15.99, "red"},
	"spotify": {9.99, "green"},
}

// QuickSubscription builds a synthetic subscription for a panel service and
// prepends it. Unknown services get 10.99 and a blue tag.
func (l *Ledger) QuickSubscription(service string, now time.Time) model.Subscription {
	amount, color := currency.Amount(10.99), "blue"
	if q, ok := quickServices[strings.ToLower(service)]; ok {
		amount, color = q.amount, q.color
	}

	s := model.Subscription{
		ID:          model.NewID(),
		Service:     titleCase(service),
		Amount:      amount,
		NextPayment: model.Date(now),
		Color:       color,
	}
	l.AddSubscription(s)
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
