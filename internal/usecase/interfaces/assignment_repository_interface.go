package interfaces

import (
	"context"

	"buffet_festas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IAssignmentRepository abstracts DynamoDB persistence for Assignment.
//
// The service must be able to:
//   - list the team of an event (event_id-index)
//   - list the agenda of a freelancer (freelancer_id-index)
//   - update payment status and bonus of a single assignment

type IAssignmentRepository interface {
	Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error)
	GetByID(ctx context.Context, id string) (entities.Assignment, error)
	List(ctx context.Context) ([]entities.Assignment, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.Assignment, error)
	ListByFreelancerID(ctx context.Context, freelancerID string) ([]entities.Assignment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Assignment, error)
	UpdateBonus(ctx context.Context, id string, bonus decimal.Decimal, reason string) (entities.Assignment, error)
}
