package usecase

import (
	"context"
	"errors"
	"testing"

	"buffet_festas/internal/domain/entities"
	mock_interfaces "buffet_festas/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type assignmentMocks struct {
	repo        *mock_interfaces.MockIAssignmentRepository
	events      *mock_interfaces.MockIEventRepository
	freelancers *mock_interfaces.MockIFreelancerRepository
}

func newAssignmentUseCase(t *testing.T) (*AssignmentUseCase, assignmentMocks) {
	ctrl := gomock.NewController(t)
	m := assignmentMocks{
		repo:        mock_interfaces.NewMockIAssignmentRepository(ctrl),
		events:      mock_interfaces.NewMockIEventRepository(ctrl),
		freelancers: mock_interfaces.NewMockIFreelancerRepository(ctrl),
	}
	return NewAssignmentUseCase(m.repo, m.events, m.freelancers), m
}

func TestAssignmentUseCase_Assign(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewAssignmentUseCase(nil, nil, nil)
		if _, err := uc.Assign(context.Background(), AssignInput{FreelancerID: "fr-1"}); !errors.Is(err, ErrInvalidEventID) {
			t.Fatalf("expected ErrInvalidEventID, got %v", err)
		}
		if _, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1"}); !errors.Is(err, ErrInvalidFreelancerID) {
			t.Fatalf("expected ErrInvalidFreelancerID, got %v", err)
		}
	})

	t.Run("event not found", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{}, nil)

		_, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1"})
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("freelancer not found", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		m.freelancers.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freelancer{}, nil)

		_, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1"})
		if !errors.Is(err, ErrFreelancerNotFound) {
			t.Fatalf("expected ErrFreelancerNotFound, got %v", err)
		}
	})

	t.Run("already assigned", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		m.freelancers.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freelancer{ID: "fr-1"}, nil)
		m.repo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return([]entities.Assignment{{ID: "as-0", FreelancerID: "fr-1"}}, nil)

		_, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1"})
		if !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}
	})

	t.Run("default rate of freelancer role", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		m.freelancers.EXPECT().GetByID(gomock.Any(), "fr-1").
			Return(entities.Freelancer{ID: "fr-1", Name: "Carla", DefaultRole: entities.RoleCozinheiro}, nil)
		m.repo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assignment{})).DoAndReturn(
			func(_ context.Context, a entities.Assignment) (entities.Assignment, error) {
				return a, nil
			},
		)

		res, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleCozinheiro || !res.Value.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("unexpected assignment: %+v", res)
		}
		if res.FreelancerName != "Carla" || res.PaymentStatus != entities.PaymentStatusPendente || !res.Bonus.IsZero() {
			t.Fatalf("unexpected assignment: %+v", res)
		}
	})

	t.Run("explicit role and value", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		m.freelancers.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freelancer{ID: "fr-1", DefaultRole: entities.RoleOutro}, nil)
		m.repo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assignment) (entities.Assignment, error) {
				return a, nil
			},
		)

		v := decimal.RequireFromString("180.50")
		res, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1", Role: "garcom", Value: &v})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleGarcom || !res.Value.Equal(v) {
			t.Fatalf("unexpected assignment: %+v", res)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		m.freelancers.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freelancer{ID: "fr-1", DefaultRole: entities.RoleOutro}, nil)
		m.repo.EXPECT().ListByEventID(gomock.Any(), "ev-1").Return(nil, nil)

		v := decimal.NewFromInt(-10)
		_, err := uc.Assign(context.Background(), AssignInput{EventID: "ev-1", FreelancerID: "fr-1", Value: &v})
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestAssignmentUseCase_SetPaymentStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewAssignmentUseCase(nil, nil, nil)
		_, err := uc.SetPaymentStatus(context.Background(), "as-1", "quitado")
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "as-1", entities.PaymentStatusPago).Return(entities.Assignment{}, nil)

		_, err := uc.SetPaymentStatus(context.Background(), "as-1", "pago")
		if !errors.Is(err, ErrAssignmentNotFound) {
			t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "as-1", entities.PaymentStatusParcial).
			Return(entities.Assignment{ID: "as-1", PaymentStatus: entities.PaymentStatusParcial}, nil)

		res, err := uc.SetPaymentStatus(context.Background(), " as-1 ", " parcial ")
		if err != nil || res.PaymentStatus != entities.PaymentStatusParcial {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})
}

func TestAssignmentUseCase_SetBonus(t *testing.T) {
	t.Run("negative bonus", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assignment{ID: "as-1", Value: decimal.NewFromInt(100)}, nil)

		_, err := uc.SetBonus(context.Background(), "as-1", decimal.NewFromInt(-5), "")
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("bonus without reason is accepted", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assignment{ID: "as-1", Value: decimal.NewFromInt(100)}, nil)
		m.repo.EXPECT().UpdateBonus(gomock.Any(), "as-1", decimal.NewFromInt(30), "").
			Return(entities.Assignment{ID: "as-1", Value: decimal.NewFromInt(100), Bonus: decimal.NewFromInt(30)}, nil)

		res, err := uc.SetBonus(context.Background(), "as-1", decimal.NewFromInt(30), "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Valuation().Total().Equal(decimal.NewFromInt(130)) {
			t.Fatalf("unexpected total %s", res.Valuation().Total())
		}
	})

	t.Run("zero bonus clears reason", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "as-1").
			Return(entities.Assignment{ID: "as-1", Value: decimal.NewFromInt(100), Bonus: decimal.NewFromInt(30), BonusReason: "hora extra"}, nil)
		m.repo.EXPECT().UpdateBonus(gomock.Any(), "as-1", decimal.Zero, "").
			Return(entities.Assignment{ID: "as-1", Value: decimal.NewFromInt(100)}, nil)

		if _, err := uc.SetBonus(context.Background(), "as-1", decimal.Zero, "hora extra"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newAssignmentUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "as-1").Return(entities.Assignment{}, nil)

		_, err := uc.SetBonus(context.Background(), "as-1", decimal.NewFromInt(10), "")
		if !errors.Is(err, ErrAssignmentNotFound) {
			t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
		}
	})
}
