package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/report"
	"buffet_festas/internal/usecase/interfaces"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

// ReportPeriod filters reports by event date. Year 0 means every event;
// Month 0 means the whole year.
type ReportPeriod struct {
	Year  int
	Month int
}

func (p ReportPeriod) validate() error {
	if p.Year < 0 || p.Month < 0 || p.Month > 12 {
		return fmt.Errorf("%w: year=%d month=%d", ErrInvalidReportPeriod, p.Year, p.Month)
	}
	if p.Year == 0 && p.Month != 0 {
		return fmt.Errorf("%w: month requires a year", ErrInvalidReportPeriod)
	}
	return nil
}

func (p ReportPeriod) contains(d time.Time) bool {
	if p.Year == 0 {
		return true
	}
	if d.Year() != p.Year {
		return false
	}
	return p.Month == 0 || d.Month() == time.Month(p.Month)
}

// IReportUseCase exposes the dashboard analytics. Every call reads fresh data.
type IReportUseCase interface {
	FinancialSummary(ctx context.Context, period ReportPeriod) (report.FinancialSummary, error)
	TopClients(ctx context.Context, n int) ([]report.RankEntry, error)
	TopFreelancers(ctx context.Context, n int) ([]report.RankEntry, error)
	PeakDemandMonth(ctx context.Context, year int) (report.PeakMonth, error)
}

type ReportUseCase struct {
	eventRepo      interfaces.IEventRepository
	clientRepo     interfaces.IClientRepository
	freelancerRepo interfaces.IFreelancerRepository
	assignmentRepo interfaces.IAssignmentRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	eventRepo interfaces.IEventRepository,
	clientRepo interfaces.IClientRepository,
	freelancerRepo interfaces.IFreelancerRepository,
	assignmentRepo interfaces.IAssignmentRepository,
) *ReportUseCase {
	return &ReportUseCase{
		eventRepo:      eventRepo,
		clientRepo:     clientRepo,
		freelancerRepo: freelancerRepo,
		assignmentRepo: assignmentRepo,
	}
}

// FinancialSummary totals freelancer payments by payment status for the
// assignments whose event falls in period.
func (u *ReportUseCase) FinancialSummary(ctx context.Context, period ReportPeriod) (report.FinancialSummary, error) {
	if err := period.validate(); err != nil {
		return report.FinancialSummary{}, err
	}

	assignments, err := u.assignmentRepo.List(ctx)
	if err != nil {
		return report.FinancialSummary{}, err
	}

	if period.Year != 0 {
		events, err := u.eventRepo.List(ctx)
		if err != nil {
			return report.FinancialSummary{}, err
		}
		inPeriod := make(map[string]bool, len(events))
		for _, e := range events {
			if period.contains(e.Date) {
				inPeriod[e.ID] = true
			}
		}
		filtered := assignments[:0:0]
		for _, a := range assignments {
			if inPeriod[a.EventID] {
				filtered = append(filtered, a)
			}
		}
		assignments = filtered
	}

	return report.Summarize(report.RecordsFromAssignments(assignments))
}

// TopClients ranks clients by number of booked events.
func (u *ReportUseCase) TopClients(ctx context.Context, n int) ([]report.RankEntry, error) {
	events, err := u.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	events = eventsInCreationOrder(events)
	keys := make([]string, 0, len(events))
	for _, e := range events {
		if e.ClientID != "" {
			keys = append(keys, e.ClientID)
		}
	}
	counts := report.CountByKey(keys)

	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	for i := range counts {
		if c, ok := byID[counts[i].Key]; ok {
			counts[i].Name = c.Name
			counts[i].Subtitle = c.Phone
		}
	}
	return report.Rank(counts, n)
}

// TopFreelancers ranks freelancers by number of distinct events worked.
func (u *ReportUseCase) TopFreelancers(ctx context.Context, n int) ([]report.RankEntry, error) {
	assignments, err := u.assignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	assignments = assignmentsInCreationOrder(assignments)
	seen := make(map[[2]string]bool, len(assignments))
	keys := make([]string, 0, len(assignments))
	names := make(map[string]string)
	for _, a := range assignments {
		pair := [2]string{a.FreelancerID, a.EventID}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		keys = append(keys, a.FreelancerID)
		if a.FreelancerName != "" {
			names[a.FreelancerID] = a.FreelancerName
		}
	}
	counts := report.CountByKey(keys)

	freelancers, err := u.freelancerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Freelancer, len(freelancers))
	for _, f := range freelancers {
		byID[f.ID] = f
	}
	for i := range counts {
		key := counts[i].Key
		if f, ok := byID[key]; ok {
			counts[i].Name = f.Name
			counts[i].Subtitle = string(f.DefaultRole)
		} else if name, ok := names[key]; ok {
			counts[i].Name = name
		}
	}
	return report.Rank(counts, n)
}

// Repositories return items in storage key order; rankings break ties by
// first booking, so counts are taken in creation order.
func eventsInCreationOrder(events []entities.Event) []entities.Event {
	out := append([]entities.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func assignmentsInCreationOrder(assignments []entities.Assignment) []entities.Assignment {
	out := append([]entities.Assignment(nil), assignments...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// PeakDemandMonth finds the busiest month of year. A year without events
// returns entities.ErrNoData.
func (u *ReportUseCase) PeakDemandMonth(ctx context.Context, year int) (report.PeakMonth, error) {
	if year <= 0 {
		return report.PeakMonth{}, fmt.Errorf("%w: year=%d", ErrInvalidReportPeriod, year)
	}
	events, err := u.eventRepo.List(ctx)
	if err != nil {
		return report.PeakMonth{}, err
	}
	dates := make([]time.Time, 0, len(events))
	for _, e := range events {
		dates = append(dates, e.Date)
	}
	return report.PeakDemandMonth(report.MonthlyCounts(dates, year))
}
