package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/format"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

type IClientUseCase interface {
	Create(ctx context.Context, name, phone, notes string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create stores a client with the phone in display form "(DD) DDDDD-DDDD"
// when it has 11 digits.
func (u *ClientUseCase) Create(ctx context.Context, name, phone, notes string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     format.Phone(strings.TrimSpace(phone)),
		Notes:     strings.TrimSpace(notes),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
