package interfaces

import (
	"context"

	"buffet_festas/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for Charge.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Charge, error)
}
