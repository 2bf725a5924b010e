// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"chambers/internal/shared/logger"
)

// ReminderProcessor runs one missing-endorsement reminder pass.
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// SchedulerManager owns the single gocron scheduler instance. Cron
// expressions are evaluated in the firm's timezone, so "17:00" means five
// o'clock at the courthouse regardless of where the worker runs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(loc *time.Location, log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterEndorsementReminderJob schedules the daily reminder pass. Singleton
// mode guarantees passes never overlap; a pass still running when the next
// trigger fires causes the new trigger to be rescheduled, not stacked.
func (m *SchedulerManager) RegisterEndorsementReminderJob(
	cronExpr string,
	processor ReminderProcessor,
	timeout time.Duration,
) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.processReminders(ctx, processor)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder", "endorsement"),
		gocron.WithName("endorsement-reminder"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered endorsement reminder job", "cron", cronExpr)
	return nil
}

func (m *SchedulerManager) processReminders(ctx context.Context, processor ReminderProcessor) {
	m.logger.Debugw("endorsement reminder pass started")

	if err := processor.ProcessReminders(ctx); err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("endorsement reminder pass failed", "error", err)
		return
	}

	m.logger.Debugw("endorsement reminder pass finished")
}

// Start begins executing registered jobs. Safe to call more than once.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop shuts down the scheduler and waits for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns the names of registered jobs.
func (m *SchedulerManager) Jobs() []string {
	jobs := m.scheduler.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}
