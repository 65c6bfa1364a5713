package handler

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/scheduler"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
)

type countingReloader struct {
	reloads atomic.Int32
}

func (c *countingReloader) Reload() {
	c.reloads.Add(1)
}

func TestCronHandlers(t *testing.T) {
	reloader := &countingReloader{}
	rollover := scheduler.NewPeriodRolloverService(reloader, config.PeriodRollover{CronSchedule: "0 0 1 * *"}, clockwork.NewFakeClockAt(testNow))
	routes := router.New(router.WithRoutes(CronJobs(CronJobServices{PeriodRollover: rollover})...))

	t.Run("manual rollover", func(t *testing.T) {
		rec := serve(t, asRole(middleware.RoleAdmin, routes), http.MethodPost, "/v1/cron/period-rollover/run", nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Eventually(t, func() bool { return reloader.reloads.Load() == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("unknown job type", func(t *testing.T) {
		rec := serve(t, asRole(middleware.RoleAdmin, routes), http.MethodPost, "/v1/cron/meta/run", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("managers cannot trigger jobs", func(t *testing.T) {
		rec := serve(t, asRole(middleware.RoleManager, routes), http.MethodPost, "/v1/cron/all/run", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		require.Eventually(t, func() bool {
			return rollover.GetStatus()["sync_running"] == false
		}, time.Second, 5*time.Millisecond)

		rec := serve(t, asRole(middleware.RoleAdmin, routes), http.MethodGet, "/v1/cron/status", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.EqualValues(t, 1, status[CronJobTypePeriodRollover]["runs"])
	})
}

type staticSummary struct {
	summary *domain.DashboardSummary
}

func (s staticSummary) Snapshot(context.Context) *domain.DashboardSummary {
	return s.summary
}

func TestGetDashboardSummary(t *testing.T) {
	source := staticSummary{summary: &domain.DashboardSummary{
		Headcount:        domain.HeadcountSummary{Total: 12, Billable: 9},
		ProjectsByStatus: map[string]int{domain.ProjectStatusAtRisk: 2},
		OpenEscalations:  3,
	}}
	h := asRole(middleware.RoleViewer, router.New(router.WithRoutes(Dashboard(source)...)))

	rec := serve(t, h, http.MethodGet, "/v1/dashboard/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 12, got.Headcount.Total)
	assert.Equal(t, 2, got.ProjectsByStatus[domain.ProjectStatusAtRisk])
	assert.Equal(t, 3, got.OpenEscalations)
}

func TestHealthcheck(t *testing.T) {
	h := router.New(router.WithRoutes(Healthcheck(clockwork.NewFakeClockAt(testNow))...))

	rec := serve(t, h, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2025-06-15")
}
