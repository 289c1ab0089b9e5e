package usecase

import (
	"context"
	"errors"
	"testing"

	"buffet_festas/internal/domain/entities"
	mock_interfaces "buffet_festas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), " ", "", "")
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("phone is formatted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), "Maria", "11987654321", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Phone != "(11) 98765-4321" || res.ID == "" {
			t.Fatalf("unexpected client: %+v", res)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "cl-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestFreelancerUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewFreelancerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateFreelancerInput{})
		if !errors.Is(err, ErrInvalidFreelancerInput) {
			t.Fatalf("expected ErrInvalidFreelancerInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewFreelancerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateFreelancerInput{Name: "João", DefaultRole: "dj"})
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("role defaults to outro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFreelancerRepository(ctrl)
		uc := NewFreelancerUseCase(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.Freelancer) (entities.Freelancer, error) {
				return f, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateFreelancerInput{Name: "João", TelegramChatID: " 99 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DefaultRole != entities.RoleOutro || res.TelegramChatID != "99" {
			t.Fatalf("unexpected freelancer: %+v", res)
		}
	})
}

func TestFreelancerUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFreelancerRepository(ctrl)
	uc := NewFreelancerUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freelancer{}, nil)

	_, err := uc.GetByID(context.Background(), "fr-1")
	if !errors.Is(err, ErrFreelancerNotFound) {
		t.Fatalf("expected ErrFreelancerNotFound, got %v", err)
	}
}
