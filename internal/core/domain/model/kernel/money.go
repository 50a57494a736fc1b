package kernel

import (
	"fmt"

	"dronedelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount with exact decimal arithmetic.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal, rejecting negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates Money from a wire value such as 12.99.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Decimal returns the exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount for JSON encoding.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual compares amounts numerically, so 12.9 equals 12.90.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
