package request

import (
	"strings"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"
)

type BudgetItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// BudgetRequest is the payload for creating or recalculating an event budget.
type BudgetRequest struct {
	Items     []BudgetItemRequest `json:"items" binding:"required,dive"`
	Discount  float64             `json:"discount"`
	Surcharge float64             `json:"surcharge"`
}

// ToInput converts float amounts to decimals. Sign checks are left to the
// budget rules so the error names the offending line.
func (r BudgetRequest) ToInput() (usecase.BudgetInput, error) {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		price, err := entities.MoneyFromFloat(it.UnitPrice)
		if err != nil {
			return usecase.BudgetInput{}, err
		}
		items = append(items, entities.BudgetItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   price,
		})
	}
	discount, err := entities.MoneyFromFloat(r.Discount)
	if err != nil {
		return usecase.BudgetInput{}, err
	}
	surcharge, err := entities.MoneyFromFloat(r.Surcharge)
	if err != nil {
		return usecase.BudgetInput{}, err
	}
	return usecase.BudgetInput{Items: items, Discount: discount, Surcharge: surcharge}, nil
}
