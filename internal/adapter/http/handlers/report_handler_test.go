package handlers

import (
	"net/http"
	"testing"
	"time"

	"buffet_festas/internal/adapter/http/handlers/mocks"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/report"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newReportRouter(uc *mocks.MockIReportUseCase) *gin.Engine {
	h := NewReportHandler(uc, schedule.FixedClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))
	r := gin.New()
	r.GET("/v1/reports/financial", h.FinancialSummary)
	r.GET("/v1/reports/top-clients", h.TopClients)
	r.GET("/v1/reports/top-freelancers", h.TopFreelancers)
	r.GET("/v1/reports/peak-month", h.PeakMonth)
	return r
}

func TestReportHandler_FinancialSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	r := newReportRouter(uc)

	w := performRequest(r, http.MethodGet, "/v1/reports/financial?year=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().FinancialSummary(gomock.Any(), usecase.ReportPeriod{Month: 3}).Return(report.FinancialSummary{}, usecase.ErrInvalidReportPeriod)
	w = performRequest(r, http.MethodGet, "/v1/reports/financial?month=3", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().FinancialSummary(gomock.Any(), usecase.ReportPeriod{Year: 2026, Month: 3}).Return(report.FinancialSummary{
		Total:   decimal.NewFromInt(330),
		Paid:    decimal.NewFromInt(130),
		Partial: decimal.Zero,
		Pending: decimal.NewFromInt(200),
		Count:   2,
	}, nil)
	w = performRequest(r, http.MethodGet, "/v1/reports/financial?year=2026&month=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	decodeBody(t, w, &body)
	if body["total"].(map[string]any)["formatted"] != "R$ 330,00" || body["count"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReportHandler_Rankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	r := newReportRouter(uc)

	uc.EXPECT().TopClients(gomock.Any(), report.DefaultTopN).Return([]report.RankEntry{{Position: 1, Key: "c-1", Name: "Ana", Events: 3}}, nil)
	w := performRequest(r, http.MethodGet, "/v1/reports/top-clients", "")
	var clients []map[string]any
	decodeBody(t, w, &clients)
	if w.Code != http.StatusOK || len(clients) != 1 || clients[0]["id"] != "c-1" {
		t.Fatalf("unexpected response %d %v", w.Code, clients)
	}

	uc.EXPECT().TopFreelancers(gomock.Any(), 0).Return(nil, nil)
	w = performRequest(r, http.MethodGet, "/v1/reports/top-freelancers?n=0", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	w = performRequest(r, http.MethodGet, "/v1/reports/top-freelancers?n=x", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_PeakMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	r := newReportRouter(uc)

	uc.EXPECT().PeakDemandMonth(gomock.Any(), 2026).Return(report.PeakMonth{}, entities.ErrNoData)
	w := performRequest(r, http.MethodGet, "/v1/reports/peak-month", "")
	if w.Code != http.StatusNotFound || errorCode(t, w) != "NO_DATA" {
		t.Fatalf("expected 404 NO_DATA, got %d", w.Code)
	}

	uc.EXPECT().PeakDemandMonth(gomock.Any(), 2025).Return(report.PeakMonth{Month: time.December, Name: "Dezembro", Events: 4, Average: 1, PercentAboveAverage: 300, AboveAverage: true}, nil)
	w = performRequest(r, http.MethodGet, "/v1/reports/peak-month?year=2025", "")
	var body map[string]any
	decodeBody(t, w, &body)
	if w.Code != http.StatusOK || body["month"] != float64(12) || body["name"] != "Dezembro" || body["year"] != float64(2025) {
		t.Fatalf("unexpected response %d %v", w.Code, body)
	}
}
