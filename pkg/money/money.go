// Package money provides the Amount value type, a decimal number tagged
// with a currency, and renders amounts to human-readable strings under a
// configurable FormatConfig.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jezen/currencies/pkg/currency"
)

// Amount is an immutable monetary value. The zero value is zero units of
// the XXX placeholder currency.
type Amount struct {
	curr  currency.Currency
	value decimal.Decimal
}

// New creates an Amount from a decimal value.
func New(c currency.Currency, value decimal.Decimal) Amount {
	return Amount{curr: c, value: value}
}

// NewFromString creates an Amount from the decimal string representation
// of a value, e.g. "2342.20".
func NewFromString(c currency.Currency, value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return Amount{curr: c, value: d}, nil
}

// NewFromFloat creates an Amount from a float64. NaN and infinities are
// not representable as amounts and are rejected rather than letting the
// decimal conversion panic.
func NewFromFloat(c currency.Currency, value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, fmt.Errorf("amount must be finite, got %v", value)
	}
	return Amount{curr: c, value: decimal.NewFromFloat(value)}, nil
}

// Currency returns the currency the amount is denominated in.
func (a Amount) Currency() currency.Currency { return a.curr }

// Value returns the numeric value.
func (a Amount) Value() decimal.Decimal { return a.value }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a.value.IsNegative() }

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool { return a.value.IsZero() }
