package ledger

import (
	"time"

	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/model"
)

// BudgetSummary holds the derived figures for the budget overview. All
// amounts are canonical; PercentUsed is unclamped while BarFraction is the
// clamped [0,1] value used for the visual progress bar.
type BudgetSummary struct {
	Budget      currency.Amount
	Spent       currency.Amount
	Remaining   currency.Amount
	PercentUsed float64
	BarFraction float64
}

// MonthStats holds the history figures for one selected month.
type MonthStats struct {
	Spendings     []model.Spending
	Subscriptions []model.Subscription

	SpendingsTotal     currency.Amount
	SubscriptionsTotal currency.Amount
	CombinedTotal      currency.Amount
}

// TotalSpent sums every spending amount.
func TotalSpent(spendings []model.Spending) currency.Amount {
	var total currency.Amount
	for _, s := range spendings {
		total += s.Amount
	}
	return total
}

// Summarize computes the budget overview. Remaining may go negative; a zero
// budget reads as 0% used.
func Summarize(spendings []model.Spending, budget currency.Amount) BudgetSummary {
	spent := TotalSpent(spendings)

	sum := BudgetSummary{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget - spent,
	}
	if budget > 0 {
		sum.PercentUsed = float64(spent) / float64(budget) * 100
	}

	sum.BarFraction = sum.PercentUsed / 100
	if sum.BarFraction > 1 {
		sum.BarFraction = 1
	}
	if sum.BarFraction < 0 {
		sum.BarFraction = 0
	}
	return sum
}

// MonthlyTotal sums every subscription amount. Each subscription counts as a
// flat monthly charge regardless of its next-payment date.
func MonthlyTotal(subs []model.Subscription) currency.Amount {
	var total currency.Amount
	for _, s := range subs {
		total += s.Amount
	}
	return total
}

// CalendarMonth buckets subscriptions by day-of-month for the displayed
// month. Days are 1-indexed; subscriptions from other months are ignored.
func CalendarMonth(subs []model.Subscription, year int, month time.Month) map[int][]model.Subscription {
	buckets := make(map[int][]model.Subscription)
	for _, s := range subs {
		if s.NextPayment.Year() == year && s.NextPayment.Month() == month {
			day := s.NextPayment.Day()
			buckets[day] = append(buckets[day], s)
		}
	}
	return buckets
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month
// (0 = Sunday, matching calendar column order).
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// HistoryMonth filters both collections to entries dated in the selected
// (year, month) and totals them. An empty month yields zero totals.
func HistoryMonth(spendings []model.Spending, subs []model.Subscription, year int, month time.Month) MonthStats {
	var stats MonthStats

	for _, s := range spendings {
		if s.Date.Year() == year && s.Date.Month() == month {
			stats.Spendings = append(stats.Spendings, s)
			stats.SpendingsTotal += s.Amount
		}
	}
	for _, s := range subs {
		if s.NextPayment.Year() == year && s.NextPayment.Month() == month {
			stats.Subscriptions = append(stats.Subscriptions, s)
			stats.SubscriptionsTotal += s.Amount
		}
	}

	stats.CombinedTotal = stats.SpendingsTotal + stats.SubscriptionsTotal
	return stats
}
