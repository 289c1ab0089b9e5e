package response

import (
	"buffet_festas/internal/domain/format"

	"github.com/shopspring/decimal"
)

// Money is an amount as a two-digit decimal string plus its "R$" rendering.
type Money struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Amount: d.StringFixed(2), Formatted: format.Currency(d)}
}
