package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrAssignmentAlreadyExists = errors.New("freelancer already assigned to event")
	ErrInvalidAssignmentID     = errors.New("invalid assignment id")
	ErrInvalidAssignmentInput  = errors.New("invalid assignment input")
)

// AssignInput describes a freelancer joining an event team. A nil Value
// means "use the default rate of the role"; an empty Role means "use the
// freelancer default role".
type AssignInput struct {
	EventID      string
	FreelancerID string
	Role         string
	Value        *decimal.Decimal
}

// IAssignmentUseCase exposes team and freelancer payment operations.
type IAssignmentUseCase interface {
	Assign(ctx context.Context, in AssignInput) (entities.Assignment, error)
	ListByEvent(ctx context.Context, eventID string) ([]entities.Assignment, error)
	SetPaymentStatus(ctx context.Context, id string, status string) (entities.Assignment, error)
	SetBonus(ctx context.Context, id string, bonus decimal.Decimal, reason string) (entities.Assignment, error)
}

type AssignmentUseCase struct {
	repo           interfaces.IAssignmentRepository
	eventRepo      interfaces.IEventRepository
	freelancerRepo interfaces.IFreelancerRepository
	log            *zap.Logger
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(repo interfaces.IAssignmentRepository, eventRepo interfaces.IEventRepository, freelancerRepo interfaces.IFreelancerRepository) *AssignmentUseCase {
	return &AssignmentUseCase{
		repo:           repo,
		eventRepo:      eventRepo,
		freelancerRepo: freelancerRepo,
		log:            logger.Component("assignment.usecase"),
	}
}

func (u *AssignmentUseCase) Assign(ctx context.Context, in AssignInput) (entities.Assignment, error) {
	eventID := strings.TrimSpace(in.EventID)
	if eventID == "" {
		return entities.Assignment{}, ErrInvalidEventID
	}
	freelancerID := strings.TrimSpace(in.FreelancerID)
	if freelancerID == "" {
		return entities.Assignment{}, ErrInvalidFreelancerID
	}

	ev, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if ev.ID == "" {
		return entities.Assignment{}, ErrEventNotFound
	}

	f, err := u.freelancerRepo.GetByID(ctx, freelancerID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if f.ID == "" {
		return entities.Assignment{}, ErrFreelancerNotFound
	}

	team, err := u.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return entities.Assignment{}, err
	}
	for _, a := range team {
		if a.FreelancerID == freelancerID {
			return entities.Assignment{}, ErrAssignmentAlreadyExists
		}
	}

	role := f.DefaultRole
	if v := strings.TrimSpace(in.Role); v != "" {
		if role, err = entities.ParseRole(v); err != nil {
			return entities.Assignment{}, err
		}
	}

	var value decimal.Decimal
	if in.Value != nil {
		value = *in.Value
	} else {
		rate, ok := entities.DefaultRate(role)
		if !ok {
			return entities.Assignment{}, fmt.Errorf("%w: no default rate for role %q", ErrInvalidAssignmentInput, role)
		}
		value = rate
	}
	if _, err := entities.NewValuation(value, decimal.Zero, ""); err != nil {
		return entities.Assignment{}, err
	}

	now := time.Now().UTC()
	a := entities.Assignment{
		ID:             uuid.NewString(),
		EventID:        eventID,
		FreelancerID:   freelancerID,
		FreelancerName: f.Name,
		Role:           role,
		Value:          value,
		Bonus:          decimal.Zero,
		PaymentStatus:  entities.PaymentStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error("create assignment failed", zap.String("event_id", eventID), zap.String("freelancer_id", freelancerID), zap.Error(err))
		return entities.Assignment{}, err
	}
	u.log.Info("freelancer assigned",
		zap.String("assignment_id", created.ID),
		zap.String("event_id", eventID),
		zap.String("role", string(role)),
		zap.String("value", value.StringFixed(2)),
	)
	return created, nil
}

func (u *AssignmentUseCase) ListByEvent(ctx context.Context, eventID string) ([]entities.Assignment, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrInvalidEventID
	}
	return u.repo.ListByEventID(ctx, eventID)
}

// SetPaymentStatus records the payment state of an assignment. The status is
// assigned by the caller and no transition rules apply.
func (u *AssignmentUseCase) SetPaymentStatus(ctx context.Context, id string, status string) (entities.Assignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assignment{}, ErrInvalidAssignmentID
	}
	ps, err := entities.ParsePaymentStatus(strings.TrimSpace(status))
	if err != nil {
		return entities.Assignment{}, err
	}

	updated, err := u.repo.UpdatePaymentStatus(ctx, id, ps)
	if err != nil {
		return entities.Assignment{}, err
	}
	if updated.ID == "" {
		return entities.Assignment{}, ErrAssignmentNotFound
	}
	return updated, nil
}

// SetBonus replaces the bonus and its reason. A zero bonus clears it.
func (u *AssignmentUseCase) SetBonus(ctx context.Context, id string, bonus decimal.Decimal, reason string) (entities.Assignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assignment{}, ErrInvalidAssignmentID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}
	if current.ID == "" {
		return entities.Assignment{}, ErrAssignmentNotFound
	}

	v, err := entities.NewValuation(current.Value, bonus, strings.TrimSpace(reason))
	if err != nil {
		return entities.Assignment{}, err
	}
	if !v.HasBonus() {
		v.Reason = ""
	}

	updated, err := u.repo.UpdateBonus(ctx, id, v.Bonus, v.Reason)
	if err != nil {
		return entities.Assignment{}, err
	}
	if updated.ID == "" {
		return entities.Assignment{}, ErrAssignmentNotFound
	}
	return updated, nil
}
