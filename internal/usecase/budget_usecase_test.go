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

func budgetInput() BudgetInput {
	return BudgetInput{
		Items: []entities.BudgetItem{
			{Description: "Salgados (cento)", Quantity: 3, UnitPrice: decimal.RequireFromString("89.90")},
			{Description: "Decoração", Quantity: 1, UnitPrice: decimal.RequireFromString("600")},
		},
		Discount:  decimal.RequireFromString("50"),
		Surcharge: decimal.RequireFromString("20"),
	}
}

func TestBudgetUseCase_CalculateBudget(t *testing.T) {
	t.Run("invalid event id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.CalculateBudget(context.Background(), "   ", budgetInput())
		if !errors.Is(err, ErrInvalidEventID) {
			t.Fatalf("expected ErrInvalidEventID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.CalculateBudget(context.Background(), "ev-1", BudgetInput{})
		if !errors.Is(err, ErrInvalidBudgetInput) {
			t.Fatalf("expected ErrInvalidBudgetInput, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := budgetInput()
		in.Items[0].Quantity = -1
		_, err := uc.CalculateBudget(context.Background(), "ev-1", in)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("event not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		eventRepo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewBudgetUseCase(repo, eventRepo)

		eventRepo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{}, nil)

		_, err := uc.CalculateBudget(context.Background(), "ev-1", budgetInput())
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("repo get by event id error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		eventRepo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewBudgetUseCase(repo, eventRepo)

		eventRepo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{}, errors.New("db"))

		_, err := uc.CalculateBudget(context.Background(), "ev-1", budgetInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		eventRepo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewBudgetUseCase(repo, eventRepo)

		eventRepo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{ID: "ev-1"}, nil)

		_, err := uc.CalculateBudget(context.Background(), "ev-1", budgetInput())
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		eventRepo := mock_interfaces.NewMockIEventRepository(ctrl)
		uc := NewBudgetUseCase(repo, eventRepo)

		eventRepo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1"}, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID != "ev-1" || b.EventID != "ev-1" || b.Status != entities.BudgetStatusPendente {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		res, err := uc.CalculateBudget(context.Background(), " ev-1 ", budgetInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total, err := res.Total()
		if err != nil {
			t.Fatalf("unexpected total error: %v", err)
		}
		// 3*89.90 + 600 - 50 + 20
		if !total.Equal(decimal.RequireFromString("839.70")) {
			t.Fatalf("unexpected total %s", total)
		}
	})
}

func TestBudgetUseCase_UpdateStatusByEventIDFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *BudgetUseCase, ctx context.Context, eventID string) (entities.Budget, error)
		status entities.BudgetStatus
	}{
		{name: "approve", call: (*BudgetUseCase).ApproveByEventID, status: entities.BudgetStatusAprovado},
		{name: "reject", call: (*BudgetUseCase).RejectByEventID, status: entities.BudgetStatusRejeitado},
		{name: "cancel", call: (*BudgetUseCase).CancelByEventID, status: entities.BudgetStatusCancelado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid event", func(t *testing.T) {
			uc := NewBudgetUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidEventID) {
				t.Fatalf("expected ErrInvalidEventID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo, nil)
			repo.EXPECT().UpdateStatusByEventID(gomock.Any(), "ev-1", tc.status).Return(entities.Budget{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "ev-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo, nil)
			repo.EXPECT().UpdateStatusByEventID(gomock.Any(), "ev-1", tc.status).Return(entities.Budget{}, nil)

			_, err := tc.call(uc, context.Background(), "ev-1")
			if !errors.Is(err, ErrBudgetNotFound) {
				t.Fatalf("expected ErrBudgetNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo, nil)
			expected := entities.Budget{ID: "ev-1", EventID: "ev-1", Status: tc.status}
			repo.EXPECT().UpdateStatusByEventID(gomock.Any(), "ev-1", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " ev-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}

func TestBudgetUseCase_UpdateItems(t *testing.T) {
	t.Run("invalid event id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.UpdateItems(context.Background(), " ", budgetInput())
		if !errors.Is(err, ErrInvalidEventID) {
			t.Fatalf("expected ErrInvalidEventID, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := budgetInput()
		in.Discount = decimal.NewFromInt(-1)
		_, err := uc.UpdateItems(context.Background(), "ev-1", in)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{}, nil)

		_, err := uc.UpdateItems(context.Background(), "ev-1", budgetInput())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("approved budget is not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{ID: "ev-1", Status: entities.BudgetStatusAprovado}, nil)

		_, err := uc.UpdateItems(context.Background(), "ev-1", budgetInput())
		if !errors.Is(err, ErrBudgetNotEditable) {
			t.Fatalf("expected ErrBudgetNotEditable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)
		in := budgetInput()
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{ID: "ev-1", Status: entities.BudgetStatusPendente}, nil)
		repo.EXPECT().UpdateItemsByEventID(gomock.Any(), "ev-1", in.Items, in.Discount, in.Surcharge).
			Return(entities.Budget{ID: "ev-1", Items: in.Items, Discount: in.Discount, Surcharge: in.Surcharge}, nil)

		res, err := uc.UpdateItems(context.Background(), "ev-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBudgetUseCase_GetByEventID(t *testing.T) {
	t.Run("invalid event id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.GetByEventID(context.Background(), "")
		if !errors.Is(err, ErrInvalidEventID) {
			t.Fatalf("expected ErrInvalidEventID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{}, errors.New("db"))

		_, err := uc.GetByEventID(context.Background(), "ev-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)
		repo.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(entities.Budget{ID: "ev-1", EventID: "ev-1"}, nil)

		res, err := uc.GetByEventID(context.Background(), " ev-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EventID != "ev-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
