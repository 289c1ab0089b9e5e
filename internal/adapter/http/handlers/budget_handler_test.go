package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"buffet_festas/internal/adapter/http/handlers/mocks"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(uc *mocks.MockIBudgetUseCase) *gin.Engine {
	h := NewBudgetHandler(uc)
	r := gin.New()
	r.POST("/v1/events/:id/budget", h.CreateBudget)
	r.GET("/v1/events/:id/budget", h.GetBudget)
	r.PUT("/v1/events/:id/budget/items", h.UpdateItems)
	r.PATCH("/v1/events/:id/budget/approve", h.ApproveBudget)
	r.PATCH("/v1/events/:id/budget/reject", h.RejectBudget)
	r.PATCH("/v1/events/:id/budget/cancel", h.CancelBudget)
	return r
}

func sampleBudget(status entities.BudgetStatus) entities.Budget {
	return entities.Budget{
		ID:      "ev-1",
		EventID: "ev-1",
		Items: []entities.BudgetItem{
			{Description: "Buffet infantil", Quantity: 30, UnitPrice: decimal.RequireFromString("45.90")},
		},
		Discount:  decimal.Zero,
		Surcharge: decimal.Zero,
		Status:    status,
	}
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)

		w := performRequest(newBudgetRouter(uc), http.MethodPost, "/v1/events/ev-1/budget", `{"discount":10}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_BUDGET_INPUT" {
			t.Fatalf("expected 400 INVALID_BUDGET_INPUT, got %d", w.Code)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		uc.EXPECT().CalculateBudget(gomock.Any(), "ev-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetAlreadyExists)

		w := performRequest(newBudgetRouter(uc), http.MethodPost, "/v1/events/ev-1/budget", `{"items":[{"description":"Buffet","quantity":1,"unit_price":10}]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		uc.EXPECT().CalculateBudget(gomock.Any(), "ev-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.BudgetInput) (entities.Budget, error) {
				if len(in.Items) != 1 || in.Items[0].Quantity != 30 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleBudget(entities.BudgetStatusPendente), nil
			},
		)

		w := performRequest(newBudgetRouter(uc), http.MethodPost, "/v1/events/ev-1/budget",
			`{"items":[{"description":"Buffet infantil","quantity":30,"unit_price":45.9}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		total := body["total"].(map[string]any)
		if total["amount"] != "1377.00" || total["formatted"] != "R$ 1.377,00" {
			t.Fatalf("unexpected total: %v", total)
		}
	})
}

func TestBudgetHandler_StatusAndItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := newBudgetRouter(uc)

	uc.EXPECT().ApproveByEventID(gomock.Any(), "ev-1").Return(sampleBudget(entities.BudgetStatusAprovado), nil)
	w := performRequest(r, http.MethodPatch, "/v1/events/ev-1/budget/approve", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().RejectByEventID(gomock.Any(), "ev-2").Return(entities.Budget{}, usecase.ErrBudgetNotFound)
	w = performRequest(r, http.MethodPatch, "/v1/events/ev-2/budget/reject", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().CancelByEventID(gomock.Any(), "ev-1").Return(sampleBudget(entities.BudgetStatusCancelado), nil)
	w = performRequest(r, http.MethodPatch, "/v1/events/ev-1/budget/cancel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().UpdateItems(gomock.Any(), "ev-1", gomock.Any()).
		Return(entities.Budget{}, fmt.Errorf("%w: status is aprovado", usecase.ErrBudgetNotEditable))
	w = performRequest(r, http.MethodPut, "/v1/events/ev-1/budget/items", `{"items":[{"description":"Bolo","quantity":1,"unit_price":90}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	corrupt := sampleBudget(entities.BudgetStatusPendente)
	corrupt.Items[0].Quantity = 0
	uc.EXPECT().GetByEventID(gomock.Any(), "ev-1").Return(corrupt, nil)
	w = performRequest(r, http.MethodGet, "/v1/events/ev-1/budget", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for corrupt budget, got %d", w.Code)
	}
}
