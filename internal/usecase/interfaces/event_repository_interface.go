package interfaces

import (
	"context"

	"buffet_festas/internal/domain/entities"
)

// IEventRepository abstracts DynamoDB persistence for Event.
//
// Lookups that find nothing return a zero Event (empty ID) and a nil error.

type IEventRepository interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	UpdateStatus(ctx context.Context, id string, status entities.EventStatus) (entities.Event, error)
}
