package entities

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MoneyFromFloat converts an API/storage float into a decimal amount.
// NaN and ±Inf are rejected, never coerced.
func MoneyFromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: non-finite amount %v", ErrInvalidArgument, v)
	}
	return decimal.NewFromFloat(v), nil
}

// NonNegativeMoneyFromFloat is MoneyFromFloat plus a >= 0 check.
func NonNegativeMoneyFromFloat(field string, v float64) (decimal.Decimal, error) {
	d, err := MoneyFromFloat(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", ErrInvalidArgument, field)
	}
	return d, nil
}
