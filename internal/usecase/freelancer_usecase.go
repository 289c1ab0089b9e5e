package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/format"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFreelancerNotFound     = errors.New("freelancer not found")
	ErrInvalidFreelancerID    = errors.New("invalid freelancer id")
	ErrInvalidFreelancerInput = errors.New("invalid freelancer input")
)

type CreateFreelancerInput struct {
	Name           string
	Phone          string
	DefaultRole    string
	TelegramChatID string
}

type IFreelancerUseCase interface {
	Create(ctx context.Context, in CreateFreelancerInput) (entities.Freelancer, error)
	GetByID(ctx context.Context, id string) (entities.Freelancer, error)
	List(ctx context.Context) ([]entities.Freelancer, error)
}

type FreelancerUseCase struct {
	repo interfaces.IFreelancerRepository
}

var _ IFreelancerUseCase = (*FreelancerUseCase)(nil)

func NewFreelancerUseCase(repo interfaces.IFreelancerRepository) *FreelancerUseCase {
	return &FreelancerUseCase{repo: repo}
}

// Create registers a freelancer. An empty role defaults to "outro".
func (u *FreelancerUseCase) Create(ctx context.Context, in CreateFreelancerInput) (entities.Freelancer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Freelancer{}, fmt.Errorf("%w: name is required", ErrInvalidFreelancerInput)
	}

	role := entities.RoleOutro
	if v := strings.TrimSpace(in.DefaultRole); v != "" {
		r, err := entities.ParseRole(v)
		if err != nil {
			return entities.Freelancer{}, err
		}
		role = r
	}

	f := entities.Freelancer{
		ID:             uuid.NewString(),
		Name:           name,
		Phone:          format.Phone(strings.TrimSpace(in.Phone)),
		DefaultRole:    role,
		TelegramChatID: strings.TrimSpace(in.TelegramChatID),
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, f)
}

func (u *FreelancerUseCase) GetByID(ctx context.Context, id string) (entities.Freelancer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Freelancer{}, ErrInvalidFreelancerID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Freelancer{}, err
	}
	if f.ID == "" {
		return entities.Freelancer{}, ErrFreelancerNotFound
	}
	return f, nil
}

func (u *FreelancerUseCase) List(ctx context.Context) ([]entities.Freelancer, error) {
	return u.repo.List(ctx)
}
