package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "pendente"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
	BudgetStatusCancelado BudgetStatus = "cancelado"
)

// BudgetItem is a single budget line.
type BudgetItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ComputeBudgetTotal returns sum(quantity*unit price) - discount + surcharge.
//
// The result is not floored at zero: a discount larger than the subtotal gives
// a negative total. Quantities must be positive; prices, discount and
// surcharge must not be negative.
func ComputeBudgetTotal(items []BudgetItem, discount, surcharge decimal.Decimal) (decimal.Decimal, error) {
	if discount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: discount must not be negative", ErrInvalidArgument)
	}
	if surcharge.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: surcharge must not be negative", ErrInvalidArgument)
	}

	subtotal := decimal.Zero
	for i, it := range items {
		if it.Quantity <= 0 {
			return decimal.Zero, fmt.Errorf("%w: item %d quantity must be positive, got %d", ErrInvalidArgument, i, it.Quantity)
		}
		if it.UnitPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: item %d unit price must not be negative", ErrInvalidArgument, i)
		}
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return subtotal.Sub(discount).Add(surcharge), nil
}

// Budget is the quote for an event. There is at most one budget per event and
// its ID equals the event ID.
//
// Monetary representation:
//   - the total is not persisted; Total() recomputes it from the lines.
type Budget struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Items     []BudgetItem    `json:"items"`
	Discount  decimal.Decimal `json:"discount"`
	Surcharge decimal.Decimal `json:"surcharge"`
	Status    BudgetStatus    `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (b Budget) Total() (decimal.Decimal, error) {
	return ComputeBudgetTotal(b.Items, b.Discount, b.Surcharge)
}
