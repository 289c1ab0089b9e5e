package interfaces

import (
	"context"

	"buffet_festas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The service must be able to:
//   - create the budget of an event (one per event, ID = event ID)
//   - update budget status by event ID (approve/reject/cancel)
//   - replace the lines, discount and surcharge (recalculation)

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByEventID(ctx context.Context, eventID string) (entities.Budget, error)
	UpdateStatusByEventID(ctx context.Context, eventID string, status entities.BudgetStatus) (entities.Budget, error)
	UpdateItemsByEventID(ctx context.Context, eventID string, items []entities.BudgetItem, discount, surcharge decimal.Decimal) (entities.Budget, error)
}
