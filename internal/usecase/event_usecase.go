package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidEventID    = errors.New("invalid event id")
	ErrInvalidEventInput = errors.New("invalid event input")
)

// CreateEventInput carries the raw fields of a new event. Date is YYYY-MM-DD
// and Time is an optional HH:MM.
type CreateEventInput struct {
	Title    string
	Date     string
	Time     string
	Location string
	ClientID string
	Notes    string
}

// IEventUseCase exposes event (festa) operations.
type IEventUseCase interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	ChangeStatus(ctx context.Context, id string, label string) (entities.Event, error)
	HasStarted(e entities.Event) (bool, error)
}

type EventUseCase struct {
	repo       interfaces.IEventRepository
	clientRepo interfaces.IClientRepository
	clock      schedule.Clock
	loc        *time.Location
	log        *zap.Logger
}

var _ IEventUseCase = (*EventUseCase)(nil)

func NewEventUseCase(repo interfaces.IEventRepository, clientRepo interfaces.IClientRepository, clock schedule.Clock, loc *time.Location) *EventUseCase {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &EventUseCase{repo: repo, clientRepo: clientRepo, clock: clock, loc: loc, log: logger.Component("event.usecase")}
}

func (u *EventUseCase) CreateEvent(ctx context.Context, in CreateEventInput) (entities.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Event{}, fmt.Errorf("%w: title is required", ErrInvalidEventInput)
	}
	date, err := schedule.ParseDate(in.Date, u.loc)
	if err != nil {
		return entities.Event{}, fmt.Errorf("%w: %v", ErrInvalidEventInput, err)
	}
	tod := strings.TrimSpace(in.Time)
	if _, _, err := schedule.ParseTimeOfDay(tod); err != nil {
		return entities.Event{}, fmt.Errorf("%w: %v", ErrInvalidEventInput, err)
	}

	clientID := strings.TrimSpace(in.ClientID)
	if clientID != "" {
		c, err := u.clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return entities.Event{}, err
		}
		if c.ID == "" {
			return entities.Event{}, ErrClientNotFound
		}
	}

	now := time.Now().UTC()
	e := entities.Event{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      date,
		Time:      tod,
		Location:  strings.TrimSpace(in.Location),
		ClientID:  clientID,
		Status:    entities.InitialEventStatus,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error("create event failed", zap.String("event_id", e.ID), zap.Error(err))
		return entities.Event{}, err
	}
	u.log.Info("event created", zap.String("event_id", created.ID), zap.String("date", in.Date))
	return created, nil
}

func (u *EventUseCase) GetByID(ctx context.Context, id string) (entities.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Event{}, ErrInvalidEventID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if e.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (u *EventUseCase) List(ctx context.Context) ([]entities.Event, error) {
	return u.repo.List(ctx)
}

// ChangeStatus moves the event to the requested status label. Any known label
// is accepted from any current status.
func (u *EventUseCase) ChangeStatus(ctx context.Context, id string, label string) (entities.Event, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}

	next, err := current.Status.TransitionTo(strings.TrimSpace(label))
	if err != nil {
		return entities.Event{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, next)
	if err != nil {
		return entities.Event{}, err
	}
	if updated.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	u.log.Info("event status changed",
		zap.String("event_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

func (u *EventUseCase) HasStarted(e entities.Event) (bool, error) {
	return schedule.HasStarted(u.clock, e)
}
