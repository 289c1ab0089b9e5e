package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"buffet_festas/internal/adapter/http/handlers/mocks"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newChargeRouter(uc *mocks.MockIChargeUseCase, mockMode bool) *gin.Engine {
	h := NewChargeHandler(uc, mockMode)
	h.log = zap.NewNop()
	r := gin.New()
	r.POST("/v1/charges/:budget_id", h.CreateCharge)
	r.GET("/v1/charges/:budget_id", h.GetCharge)
	return r
}

func TestChargeHandler_CreateCharge(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)

		w := performRequest(newChargeRouter(uc, false), http.MethodPost, "/v1/charges/ev-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "ev-1", json.RawMessage("{}")).
			Return(entities.Charge{ID: "ch-1", BudgetID: "ev-1", Status: entities.ChargeStatusAprovado}, nil)

		w := performRequest(newChargeRouter(uc, true), http.MethodPost, "/v1/charges/ev-1", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "ev-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Charge, error) {
				if string(payload) != `{"token":"card-token"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.Charge{ID: "ch-1", BudgetID: "ev-1", Status: entities.ChargeStatusAprovado}, nil
			},
		)

		w := performRequest(newChargeRouter(uc, false), http.MethodPost, "/v1/charges/ev-1", `{"mp_payload":{"token":"card-token"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["charge_id"] != "ch-1" || body["status"] != "aprovado" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("maps use case errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrBudgetNotApproved, http.StatusConflict},
			{usecase.ErrBudgetNotFound, http.StatusNotFound},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
			{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
			{usecase.ErrInvalidChargeAmount, http.StatusUnprocessableEntity},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIChargeUseCase(ctrl)
			uc.EXPECT().CreateAndApprove(gomock.Any(), "ev-1", gomock.Any()).Return(entities.Charge{}, tc.err)

			w := performRequest(newChargeRouter(uc, false), http.MethodPost, "/v1/charges/ev-1", "")
			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestChargeHandler_GetCharge(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		uc.EXPECT().ListByBudgetID(gomock.Any(), "ev-1").Return(nil, nil)

		w := performRequest(newChargeRouter(uc, false), http.MethodGet, "/v1/charges/ev-1", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "CHARGE_NOT_FOUND" {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().ListByBudgetID(gomock.Any(), "ev-1").Return([]entities.Charge{
			{ID: "old", BudgetID: "ev-1", Date: now.Add(-time.Hour), Status: entities.ChargeStatusNegado},
			{ID: "new", BudgetID: "ev-1", Date: now, Status: entities.ChargeStatusAprovado},
		}, nil)

		w := performRequest(newChargeRouter(uc, false), http.MethodGet, "/v1/charges/ev-1", "")
		var body map[string]any
		decodeBody(t, w, &body)
		if w.Code != http.StatusOK || body["id"] != "new" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})
}
