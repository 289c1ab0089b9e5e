// Package scheduler runs periodic jobs (daily freelancer reminders).
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner wraps a seconds-aware cron. Jobs receive the base context given to
// New.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		job(r.baseCtx)
	})
}

func (r *Runner) Entries() []cron.Entry {
	return r.cron.Entries()
}

func (r *Runner) Start() {
	r.logger.Info("cron started", zap.Int("jobs", len(r.cron.Entries())))
	r.cron.Start()
}

// Stop waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cron stopped")
}

// Notifier sends the reminder to every freelancer.
type Notifier interface {
	NotifyAll(ctx context.Context) (int, error)
}

// AddReminderJob schedules notifier.NotifyAll on spec (six fields, seconds
// first).
func (r *Runner) AddReminderJob(spec string, notifier Notifier) (cron.EntryID, error) {
	return r.Add(spec, func(ctx context.Context) {
		sent, err := notifier.NotifyAll(ctx)
		if err != nil {
			r.logger.Warn("reminder job finished with errors", zap.Int("sent", sent), zap.Error(err))
			return
		}
		r.logger.Info("reminder job finished", zap.Int("sent", sent))
	})
}
