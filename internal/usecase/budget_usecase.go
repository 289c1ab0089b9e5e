package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists")
	ErrInvalidBudgetInput  = errors.New("invalid budget input")
	ErrBudgetNotEditable   = errors.New("budget is not editable")
)

// BudgetInput carries the lines and adjustments of a budget.
type BudgetInput struct {
	Items     []entities.BudgetItem
	Discount  decimal.Decimal
	Surcharge decimal.Decimal
}

// IBudgetUseCase exposes event budget (orçamento) operations.
//
//   - "Calcula Orçamento" => CalculateBudget()
//   - PATCH /events/{id}/budget/{approve,reject,cancel} => ApproveByEventID() etc.
//   - "Recalcula Orçamento" => UpdateItems()
type IBudgetUseCase interface {
	CalculateBudget(ctx context.Context, eventID string, in BudgetInput) (entities.Budget, error)
	ApproveByEventID(ctx context.Context, eventID string) (entities.Budget, error)
	RejectByEventID(ctx context.Context, eventID string) (entities.Budget, error)
	CancelByEventID(ctx context.Context, eventID string) (entities.Budget, error)
	UpdateItems(ctx context.Context, eventID string, in BudgetInput) (entities.Budget, error)
	GetByEventID(ctx context.Context, eventID string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	eventRepo interfaces.IEventRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, eventRepo interfaces.IEventRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, eventRepo: eventRepo}
}

func (u *BudgetUseCase) CalculateBudget(ctx context.Context, eventID string, in BudgetInput) (entities.Budget, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.Budget{}, ErrInvalidEventID
	}
	if err := validateBudgetInput(in); err != nil {
		return entities.Budget{}, err
	}

	ev, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return entities.Budget{}, err
	}
	if ev.ID == "" {
		return entities.Budget{}, ErrEventNotFound
	}

	// Enforce: 1 budget per event.
	if existing, err := u.repo.GetByEventID(ctx, eventID); err != nil {
		return entities.Budget{}, err
	} else if existing.ID != "" {
		return entities.Budget{}, ErrBudgetAlreadyExists
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:        eventID,
		EventID:   eventID,
		Items:     in.Items,
		Discount:  in.Discount,
		Surcharge: in.Surcharge,
		Status:    entities.BudgetStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) ApproveByEventID(ctx context.Context, eventID string) (entities.Budget, error) {
	return u.updateStatusByEventID(ctx, eventID, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) RejectByEventID(ctx context.Context, eventID string) (entities.Budget, error) {
	return u.updateStatusByEventID(ctx, eventID, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) CancelByEventID(ctx context.Context, eventID string) (entities.Budget, error) {
	return u.updateStatusByEventID(ctx, eventID, entities.BudgetStatusCancelado)
}

func (u *BudgetUseCase) updateStatusByEventID(ctx context.Context, eventID string, status entities.BudgetStatus) (entities.Budget, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.Budget{}, ErrInvalidEventID
	}

	updated, err := u.repo.UpdateStatusByEventID(ctx, eventID, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// UpdateItems replaces the lines and adjustments of a pending budget.
func (u *BudgetUseCase) UpdateItems(ctx context.Context, eventID string, in BudgetInput) (entities.Budget, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.Budget{}, ErrInvalidEventID
	}
	if err := validateBudgetInput(in); err != nil {
		return entities.Budget{}, err
	}

	current, err := u.GetByEventID(ctx, eventID)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.Status != entities.BudgetStatusPendente {
		return entities.Budget{}, fmt.Errorf("%w: status is %s", ErrBudgetNotEditable, current.Status)
	}

	updated, err := u.repo.UpdateItemsByEventID(ctx, eventID, in.Items, in.Discount, in.Surcharge)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByEventID(ctx context.Context, eventID string) (entities.Budget, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.Budget{}, ErrInvalidEventID
	}

	b, err := u.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func validateBudgetInput(in BudgetInput) error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidBudgetInput)
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("%w: item %d has no description", ErrInvalidBudgetInput, i)
		}
	}
	_, err := entities.ComputeBudgetTotal(in.Items, in.Discount, in.Surcharge)
	return err
}
