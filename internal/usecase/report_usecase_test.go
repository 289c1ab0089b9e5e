package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"buffet_festas/internal/domain/entities"
	mock_interfaces "buffet_festas/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	events      *mock_interfaces.MockIEventRepository
	clients     *mock_interfaces.MockIClientRepository
	freelancers *mock_interfaces.MockIFreelancerRepository
	assignments *mock_interfaces.MockIAssignmentRepository
}

func newReportUseCase(t *testing.T) (*ReportUseCase, reportMocks) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		events:      mock_interfaces.NewMockIEventRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		freelancers: mock_interfaces.NewMockIFreelancerRepository(ctrl),
		assignments: mock_interfaces.NewMockIAssignmentRepository(ctrl),
	}
	return NewReportUseCase(m.events, m.clients, m.freelancers, m.assignments), m
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReportUseCase_FinancialSummary(t *testing.T) {
	assignments := []entities.Assignment{
		{ID: "a1", EventID: "ev-mar", Value: decimal.NewFromInt(100), Bonus: decimal.NewFromInt(20), PaymentStatus: entities.PaymentStatusPago},
		{ID: "a2", EventID: "ev-mar", Value: decimal.NewFromInt(150), PaymentStatus: entities.PaymentStatusPendente},
		{ID: "a3", EventID: "ev-apr", Value: decimal.NewFromInt(200), PaymentStatus: entities.PaymentStatusParcial},
	}
	events := []entities.Event{
		{ID: "ev-mar", Date: day(2026, time.March, 14)},
		{ID: "ev-apr", Date: day(2026, time.April, 2)},
	}

	t.Run("invalid period", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil)
		if _, err := uc.FinancialSummary(context.Background(), ReportPeriod{Year: 2026, Month: 13}); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
		if _, err := uc.FinancialSummary(context.Background(), ReportPeriod{Month: 3}); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("all time", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.assignments.EXPECT().List(gomock.Any()).Return(assignments, nil)

		s, err := uc.FinancialSummary(context.Background(), ReportPeriod{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Total.Equal(decimal.NewFromInt(470)) || !s.Paid.Equal(decimal.NewFromInt(120)) {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if !s.Total.Equal(s.Paid.Add(s.Partial).Add(s.Pending)) {
			t.Fatalf("total does not add up: %+v", s)
		}
	})

	t.Run("filtered by month", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.assignments.EXPECT().List(gomock.Any()).Return(assignments, nil)
		m.events.EXPECT().List(gomock.Any()).Return(events, nil)

		s, err := uc.FinancialSummary(context.Background(), ReportPeriod{Year: 2026, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Count != 2 || !s.Pending.Equal(decimal.NewFromInt(150)) || !s.Partial.IsZero() {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.assignments.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.FinancialSummary(context.Background(), ReportPeriod{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReportUseCase_TopClients(t *testing.T) {
	uc, m := newReportUseCase(t)
	m.events.EXPECT().List(gomock.Any()).Return([]entities.Event{
		{ID: "e1", ClientID: "c1"},
		{ID: "e2", ClientID: "c2"},
		{ID: "e3", ClientID: "c2"},
		{ID: "e4"},
		{ID: "e5", ClientID: "c3"},
	}, nil)
	m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{
		{ID: "c1", Name: "Ana", Phone: "(11) 90000-0001"},
		{ID: "c2", Name: "Bruno"},
		{ID: "c3", Name: "Clara"},
	}, nil)

	top, err := uc.TopClients(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "Bruno" || top[0].Events != 2 || top[0].Position != 1 {
		t.Fatalf("unexpected first entry: %+v", top[0])
	}
	// tie between Ana and Clara keeps first-seen order
	if top[1].Name != "Ana" || top[1].Subtitle != "(11) 90000-0001" {
		t.Fatalf("unexpected second entry: %+v", top[1])
	}
}

func TestReportUseCase_TopFreelancers(t *testing.T) {
	uc, m := newReportUseCase(t)
	m.assignments.EXPECT().List(gomock.Any()).Return([]entities.Assignment{
		{EventID: "e1", FreelancerID: "f1", FreelancerName: "Davi"},
		{EventID: "e2", FreelancerID: "f1", FreelancerName: "Davi"},
		{EventID: "e2", FreelancerID: "f1", FreelancerName: "Davi"},
		{EventID: "e1", FreelancerID: "f2", FreelancerName: "Eva"},
	}, nil)
	m.freelancers.EXPECT().List(gomock.Any()).Return([]entities.Freelancer{
		{ID: "f1", Name: "Davi Souza", DefaultRole: entities.RoleGarcom},
	}, nil)

	top, err := uc.TopFreelancers(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "Davi Souza" || top[0].Events != 2 || top[0].Subtitle != "garcom" {
		t.Fatalf("unexpected first entry: %+v", top[0])
	}
	if top[1].Name != "Eva" || top[1].Events != 1 {
		t.Fatalf("unexpected second entry: %+v", top[1])
	}
}

func TestReportUseCase_TopClients_TieFollowsBookingOrder(t *testing.T) {
	booked := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	uc, m := newReportUseCase(t)
	// storage returns Bia's event first because of its key
	m.events.EXPECT().List(gomock.Any()).Return([]entities.Event{
		{ID: "0b", ClientID: "c-bia", CreatedAt: booked.Add(time.Hour)},
		{ID: "f0", ClientID: "c-ana", CreatedAt: booked},
	}, nil)
	m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{
		{ID: "c-ana", Name: "Ana"},
		{ID: "c-bia", Name: "Bia"},
	}, nil)

	top, err := uc.TopClients(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 || top[0].Name != "Ana" || top[0].Position != 1 || top[1].Name != "Bia" {
		t.Fatalf("expected Ana before Bia, got %+v", top)
	}
}

func TestReportUseCase_TopFreelancers_TieFollowsBookingOrder(t *testing.T) {
	booked := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	uc, m := newReportUseCase(t)
	m.assignments.EXPECT().List(gomock.Any()).Return([]entities.Assignment{
		{ID: "0a", EventID: "e2", FreelancerID: "f-caio", FreelancerName: "Caio", CreatedAt: booked.Add(2 * time.Hour)},
		{ID: "ff", EventID: "e1", FreelancerID: "f-lia", FreelancerName: "Lia", CreatedAt: booked},
	}, nil)
	m.freelancers.EXPECT().List(gomock.Any()).Return(nil, nil)

	top, err := uc.TopFreelancers(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 || top[0].Name != "Lia" || top[1].Name != "Caio" {
		t.Fatalf("expected Lia before Caio, got %+v", top)
	}
}

func TestReportUseCase_PeakDemandMonth(t *testing.T) {
	t.Run("invalid year", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil)
		_, err := uc.PeakDemandMonth(context.Background(), 0)
		if !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("no events in year", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.events.EXPECT().List(gomock.Any()).Return([]entities.Event{{Date: day(2025, time.June, 1)}}, nil)

		_, err := uc.PeakDemandMonth(context.Background(), 2026)
		if !errors.Is(err, entities.ErrNoData) {
			t.Fatalf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("peak", func(t *testing.T) {
		uc, m := newReportUseCase(t)
		m.events.EXPECT().List(gomock.Any()).Return([]entities.Event{
			{Date: day(2026, time.June, 1)},
			{Date: day(2026, time.June, 20)},
			{Date: day(2026, time.December, 5)},
			{Date: day(2025, time.June, 5)},
		}, nil)

		p, err := uc.PeakDemandMonth(context.Background(), 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Month != time.June || p.Events != 2 || !p.AboveAverage {
			t.Fatalf("unexpected peak: %+v", p)
		}
		// mean 0.25 => (2-0.25)/0.25 = 700%
		if p.PercentAboveAverage != 700 {
			t.Fatalf("unexpected percent %d", p.PercentAboveAverage)
		}
	})
}
