package response

import (
	"time"

	"buffet_festas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BudgetItemResponse struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	Subtotal    Money  `json:"subtotal"`
}

type BudgetResponse struct {
	ID        string               `json:"id"`
	EventID   string               `json:"event_id"`
	Items     []BudgetItemResponse `json:"items"`
	Discount  Money                `json:"discount"`
	Surcharge Money                `json:"surcharge"`
	Total     Money                `json:"total"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// FromBudget maps a budget and recomputes its total. Stored budgets were
// validated on write, so an error here means corrupt data.
func FromBudget(b entities.Budget) (BudgetResponse, error) {
	total, err := b.Total()
	if err != nil {
		return BudgetResponse{}, err
	}
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   NewMoney(it.UnitPrice),
			Subtotal:    NewMoney(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))),
		})
	}
	return BudgetResponse{
		ID:        b.ID,
		EventID:   b.EventID,
		Items:     items,
		Discount:  NewMoney(b.Discount),
		Surcharge: NewMoney(b.Surcharge),
		Total:     NewMoney(total),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}
