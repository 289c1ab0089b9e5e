package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/notification"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNotificationChannelMissing = errors.New("freelancer has no telegram chat id")
	ErrMessagingNotConfigured     = errors.New("message gateway not configured")
	ErrMessageDeliveryFailed      = errors.New("message delivery failed")
)

// NotificationPreview is a composed reminder for one freelancer.
type NotificationPreview struct {
	FreelancerID string
	Name         string
	Phone        string
	Message      string
	WhatsAppLink string
	Upcoming     int
}

// INotificationUseCase builds and delivers freelancer reminders.
type INotificationUseCase interface {
	Compose(ctx context.Context, freelancerID string) (NotificationPreview, error)
	Send(ctx context.Context, freelancerID string) (NotificationPreview, error)
	NotifyAll(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	freelancerRepo interfaces.IFreelancerRepository
	assignmentRepo interfaces.IAssignmentRepository
	eventRepo      interfaces.IEventRepository
	gateway        interfaces.IMessageGateway
	clock          schedule.Clock
	log            *zap.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase wires the composer. gateway may be nil, in which
// case only Compose works.
func NewNotificationUseCase(
	freelancerRepo interfaces.IFreelancerRepository,
	assignmentRepo interfaces.IAssignmentRepository,
	eventRepo interfaces.IEventRepository,
	gateway interfaces.IMessageGateway,
	clock schedule.Clock,
) *NotificationUseCase {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &NotificationUseCase{
		freelancerRepo: freelancerRepo,
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		gateway:        gateway,
		clock:          clock,
		log:            logger.Component("notification.usecase"),
	}
}

func (u *NotificationUseCase) Compose(ctx context.Context, freelancerID string) (NotificationPreview, error) {
	f, err := u.loadFreelancer(ctx, freelancerID)
	if err != nil {
		return NotificationPreview{}, err
	}
	return u.compose(ctx, f)
}

func (u *NotificationUseCase) loadFreelancer(ctx context.Context, freelancerID string) (entities.Freelancer, error) {
	freelancerID = strings.TrimSpace(freelancerID)
	if freelancerID == "" {
		return entities.Freelancer{}, ErrInvalidFreelancerID
	}
	f, err := u.freelancerRepo.GetByID(ctx, freelancerID)
	if err != nil {
		return entities.Freelancer{}, err
	}
	if f.ID == "" {
		return entities.Freelancer{}, ErrFreelancerNotFound
	}
	return f, nil
}

func (u *NotificationUseCase) compose(ctx context.Context, f entities.Freelancer) (NotificationPreview, error) {
	events, err := u.scheduledEvents(ctx, f.ID)
	if err != nil {
		return NotificationPreview{}, err
	}
	upcoming, err := notification.UpcomingEvents(u.clock, events)
	if err != nil {
		return NotificationPreview{}, err
	}
	msg, err := notification.Compose(u.clock, f.Name, upcoming)
	if err != nil {
		return NotificationPreview{}, err
	}
	return NotificationPreview{
		FreelancerID: f.ID,
		Name:         f.Name,
		Phone:        f.Phone,
		Message:      msg,
		WhatsAppLink: notification.WhatsAppLink(f.Phone, msg),
		Upcoming:     len(upcoming),
	}, nil
}

// scheduledEvents loads the events a freelancer is assigned to, ordered by
// date and time. Closed events and dangling assignments are skipped.
func (u *NotificationUseCase) scheduledEvents(ctx context.Context, freelancerID string) ([]notification.ScheduledEvent, error) {
	assignments, err := u.assignmentRepo.ListByFreelancerID(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(assignments))
	out := make([]notification.ScheduledEvent, 0, len(assignments))
	for _, a := range assignments {
		if seen[a.EventID] {
			continue
		}
		seen[a.EventID] = true

		ev, err := u.eventRepo.GetByID(ctx, a.EventID)
		if err != nil {
			return nil, err
		}
		if ev.ID == "" || ev.Status.IsTerminal() {
			continue
		}
		out = append(out, notification.ScheduledEvent{
			Title:    ev.Title,
			Date:     ev.Date,
			Time:     ev.Time,
			Location: ev.Location,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// Send composes the reminder and delivers it to the freelancer Telegram chat.
func (u *NotificationUseCase) Send(ctx context.Context, freelancerID string) (NotificationPreview, error) {
	if u.gateway == nil {
		return NotificationPreview{}, ErrMessagingNotConfigured
	}
	f, err := u.loadFreelancer(ctx, freelancerID)
	if err != nil {
		return NotificationPreview{}, err
	}
	if strings.TrimSpace(f.TelegramChatID) == "" {
		return NotificationPreview{}, ErrNotificationChannelMissing
	}
	p, err := u.compose(ctx, f)
	if err != nil {
		return NotificationPreview{}, err
	}
	if err := u.gateway.SendMessage(ctx, f.TelegramChatID, p.Message); err != nil {
		u.log.Error("send notification failed", zap.String("freelancer_id", f.ID), zap.Error(err))
		return NotificationPreview{}, fmt.Errorf("%w: %w", ErrMessageDeliveryFailed, err)
	}
	u.log.Info("notification sent", zap.String("freelancer_id", f.ID), zap.Int("upcoming", p.Upcoming))
	return p, nil
}

// NotifyAll sends the reminder to every freelancer with a Telegram chat and at
// least one upcoming event. Failures for one freelancer do not stop the
// others; they are joined into the returned error.
func (u *NotificationUseCase) NotifyAll(ctx context.Context) (int, error) {
	if u.gateway == nil {
		return 0, ErrMessagingNotConfigured
	}
	freelancers, err := u.freelancerRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	var errs []error
	for _, f := range freelancers {
		if strings.TrimSpace(f.TelegramChatID) == "" {
			continue
		}
		p, err := u.compose(ctx, f)
		if err != nil {
			errs = append(errs, fmt.Errorf("freelancer %s: %w", f.ID, err))
			continue
		}
		if p.Upcoming == 0 {
			continue
		}
		if err := u.gateway.SendMessage(ctx, f.TelegramChatID, p.Message); err != nil {
			errs = append(errs, fmt.Errorf("freelancer %s: %w", f.ID, err))
			continue
		}
		sent++
	}
	u.log.Info("reminders dispatched", zap.Int("sent", sent), zap.Int("failed", len(errs)))
	return sent, errors.Join(errs...)
}
