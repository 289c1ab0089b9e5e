package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Valuation is a base payment plus an optional bonus.
//
// The total is always derived from Base+Bonus and is never stored on its own.
// Reason is free text carried as-is; it is not required when a bonus exists.
type Valuation struct {
	Base   decimal.Decimal
	Bonus  decimal.Decimal
	Reason string
}

func NewValuation(base, bonus decimal.Decimal, reason string) (Valuation, error) {
	if base.IsNegative() {
		return Valuation{}, fmt.Errorf("%w: base value must not be negative", ErrInvalidArgument)
	}
	if bonus.IsNegative() {
		return Valuation{}, fmt.Errorf("%w: bonus must not be negative", ErrInvalidArgument)
	}
	return Valuation{Base: base, Bonus: bonus, Reason: reason}, nil
}

func (v Valuation) HasBonus() bool {
	return v.Bonus.IsPositive()
}

func (v Valuation) Total() decimal.Decimal {
	return v.Base.Add(v.Bonus)
}
