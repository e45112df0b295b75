package kernel

import (
	"fmt"

	"shipdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a signed monetary amount.
// It wraps github.com/shopspring/decimal to keep ledger arithmetic exact;
// amounts are never represented as binary floating point.
//
// The zero value of Money is a valid zero amount. All arithmetic returns
// new values, Money is immutable and safe for concurrent use.
//
// Example usage:
//
//	rate := kernel.MoneyFromFloat(85)
//	surcharge := kernel.MoneyFromFloat(50)
//	total := rate.Add(surcharge) // 135.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat creates a Money from a float64 amount.
// Intended for literal rates and test fixtures; persisted amounts should be
// restored via MoneyFromString to avoid binary rounding.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromString parses a Money from its decimal string representation.
// Returns an error if the string is not a valid decimal number.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Mul returns the amount multiplied by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// LessThan reports whether the amount is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares two amounts for numeric equality regardless of exponent.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places, e.g. "135.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// ValidateNonNegative returns an error when the amount is below zero.
// Used by constructors of objects whose amounts must not be negative
// (declared value, rates, charge components).
func (m Money) ValidateNonNegative(paramName string) error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", m.String()))
	}
	return nil
}
