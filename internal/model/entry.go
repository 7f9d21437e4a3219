// Package model defines the record types held in application state.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/evalizada/manat/internal/currency"
)

// Spending is a single discretionary expense. Records are immutable once
// created; there is no update or delete operation.
type Spending struct {
	ID          string
	Category    string
	Amount      currency.Amount
	Date        time.Time // calendar date, time component is always midnight
	Description string
}

// Subscription is a recurring monthly charge.
type Subscription struct {
	ID          string
	Service     string
	Amount      currency.Amount
	NextPayment time.Time // calendar date of the next charge
	Color       string    // display tag: red, green, blue, purple, yellow
	NotifyMail  bool
}

// NewID returns a fresh record identifier, unique within the process and
// ordered by creation time (UUIDv7).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Date truncates t to a calendar date in its location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
