package interfaces

import (
	"context"

	"buffet_festas/internal/domain/entities"
)

// IFreelancerRepository abstracts DynamoDB persistence for Freelancer.

type IFreelancerRepository interface {
	Create(ctx context.Context, f entities.Freelancer) (entities.Freelancer, error)
	GetByID(ctx context.Context, id string) (entities.Freelancer, error)
	List(ctx context.Context) ([]entities.Freelancer, error)
}
