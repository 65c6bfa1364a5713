package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/daterange"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) Reload() {
	r.calls.Add(1)
}

func TestPeriodRolloverService_Start(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PeriodRollover
		wantErr bool
	}{
		{name: "disabled", cfg: config.PeriodRollover{CronSchedule: "not a cron", Enabled: false}},
		{name: "valid schedule", cfg: config.PeriodRollover{CronSchedule: "0 0 1 * *", Enabled: true}},
		{name: "invalid schedule", cfg: config.PeriodRollover{CronSchedule: "every month", Enabled: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewPeriodRolloverService(&countingReloader{}, tt.cfg, nil)
			err := service.Start(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPeriodRolloverService_TriggerManualSync(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	reloader := &countingReloader{}
	service := NewPeriodRolloverService(reloader, config.PeriodRollover{CronSchedule: "0 0 1 * *", Enabled: true}, clock)

	service.TriggerManualSync()

	require.Eventually(t, func() bool {
		return service.GetStatus()["runs"] == 1
	}, time.Second, 5*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, int32(1), reloader.calls.Load())
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, clock.Now(), status["last_sync_completed_at"])
}

func TestPeriodRolloverService_ShiftsStoreWindows(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC))
	store := daterange.NewStore(clock, nil)
	require.True(t, store.Select(daterange.OptionLastMonth))

	service := NewPeriodRolloverService(store, config.PeriodRollover{Enabled: true}, clock)

	clock.Advance(2 * time.Hour)
	service.rollover()

	assert.Equal(t, daterange.OptionLastMonth, store.SelectedID())
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), store.Selected().Start)
}
