package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
)

// Reloader recomputes the period catalog against the current date
type Reloader interface {
	Reload()
}

// PeriodRolloverService rebuilds the period options when the calendar month changes,
// so a long running process never serves last month's windows.
type PeriodRolloverService struct {
	scheduler       *gocron.Scheduler
	config          config.PeriodRollover
	store           Reloader
	clock           clockwork.Clock
	syncRunning     bool
	syncMutex       sync.Mutex
	runs            int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func NewPeriodRolloverService(store Reloader, cfg config.PeriodRollover, clock clockwork.Clock) *PeriodRolloverService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("period rollover scheduler configured")

	return &PeriodRolloverService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		store:     store,
		clock:     clock,
	}
}

// Start schedules the rollover job and stops the scheduler when ctx is cancelled
func (s *PeriodRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("period rollover disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.rollover)
	if err != nil {
		return fmt.Errorf("error scheduling period rollover: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping period rollover scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PeriodRolloverService) rollover() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("period rollover already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.runs++
		s.lastCompletedAt = s.clock.Now()
		s.syncMutex.Unlock()
	}()

	s.store.Reload()
}

// TriggerManualSync runs the rollover now, in the background
func (s *PeriodRolloverService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("period rollover already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual period rollover")
	go s.rollover()
}

func (s *PeriodRolloverService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"runs":                   s.runs,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
	}
}
