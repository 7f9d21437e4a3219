// Package currency converts between the canonical storage currency and the
// user-selected display currency.
//
// Every amount held in application state is canonical (USD). Conversion to a
// display unit happens when a view renders a figure, and back when a form
// parses user input. The Amount/Display split keeps the two unit spaces from
// mixing at compile time.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency is a supported display currency.
type Currency string

const (
	USD Currency = "USD"
	AZN Currency = "AZN"
)

// CanonicalCurrency is the unit all stored amounts are denominated in.
const CanonicalCurrency = USD

// USDToAZNRate is the fixed USD -> AZN exchange rate.
const USDToAZNRate = 1.7

// Amount is a monetary value in the canonical currency.
type Amount float64

// Display is a monetary value in the active display currency.
type Display float64

// All lists the supported currencies in presentation order.
func All() []Currency {
	return []Currency{USD, AZN}
}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	return c == USD || c == AZN
}

// ToDisplay converts a canonical amount into display units.
// Identity when c is the canonical currency.
func ToDisplay(a Amount, c Currency) Display {
	if c == AZN {
		return Display(float64(a) * USDToAZNRate)
	}
	return Display(a)
}

// FromDisplay converts a display amount back into canonical units.
// Exact inverse of ToDisplay up to floating-point rounding.
func FromDisplay(d Display, c Currency) Amount {
	if c == AZN {
		return Amount(float64(d) / USDToAZNRate)
	}
	return Amount(d)
}

// Symbol returns the glyph shown before amounts in currency c.
func Symbol(c Currency) string {
	if c == AZN {
		return "₼"
	}
	return "$"
}

// Format renders a display amount as symbol plus two decimals, e.g. "$45.50".
func Format(d Display, c Currency) string {
	return fmt.Sprintf("%s%.2f", Symbol(c), float64(d))
}

// FormatAmount converts a canonical amount and formats it in one step.
func FormatAmount(a Amount, c Currency) string {
	return Format(ToDisplay(a, c), c)
}

// ErrInvalidAmount is returned for input that is not a plain non-negative
// decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseDisplay parses user-typed text as a display-currency amount. Only
// digits and at most one decimal point are accepted; the value must be a
// finite non-negative number.
func ParseDisplay(s string) (Display, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Count(s, ".") > 1 {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return 0, ErrInvalidAmount
	}
	return Display(v), nil
}
