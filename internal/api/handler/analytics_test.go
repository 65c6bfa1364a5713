package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func (f *resourceFixture) analyticsHandler(role int) http.Handler {
	service := staffing.NewAnalyticsService(f.repo, clockwork.NewFakeClockAt(testNow))
	return asRole(role, router.New(router.WithRoutes(Analytics(service, f.store)...)))
}

func TestAnalyticsHandlers_Workforce(t *testing.T) {
	f := newResourceFixture(t)
	selected := f.store.Selected()

	f.repo.EXPECT().Headcount(gomock.Any(), &selected).Return(&domain.HeadcountSummary{Total: 4}, nil)
	f.repo.EXPECT().Breakdown(gomock.Any(), gomock.Any(), &selected).
		Return([]domain.BreakdownItem{{Name: "Pune", Count: 1}}, nil).Times(3)
	f.repo.EXPECT().SkillCounts(gomock.Any(), &selected).Return(nil, nil)

	rec := serve(t, f.analyticsHandler(middleware.RoleViewer), http.MethodGet, "/v1/analytics/workforce", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var analytics domain.WorkforceAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	assert.Equal(t, 4, analytics.Total)
	assert.Equal(t, []domain.BreakdownItem{{Name: "Pune", Count: 1, Percentage: 25}}, analytics.Locations)
	assert.Empty(t, analytics.Skills)
}

func TestAnalyticsHandlers_Lookahead(t *testing.T) {
	t.Run("resignations within the requested days", func(t *testing.T) {
		f := newResourceFixture(t)
		window := domain.Period{
			Start: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		}
		f.repo.EXPECT().List(gomock.Any(), repository.ResourceFilters{Leaving: &window}).
			Return([]*domain.Resource{{ID: 3, FullName: "Alan"}}, nil)

		rec := serve(t, f.analyticsHandler(middleware.RoleManager), http.MethodGet, "/v1/analytics/resignations?days=30", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resources []domain.Resource
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resources))
		require.Len(t, resources, 1)
		assert.Equal(t, "Alan", resources[0].FullName)
	})

	t.Run("non numeric days", func(t *testing.T) {
		f := newResourceFixture(t)

		rec := serve(t, f.analyticsHandler(middleware.RoleAdmin), http.MethodGet, "/v1/analytics/upcoming-releases?days=soon", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("days past a year", func(t *testing.T) {
		f := newResourceFixture(t)

		rec := serve(t, f.analyticsHandler(middleware.RoleAdmin), http.MethodGet, "/v1/analytics/upcoming-releases?days=400", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("viewer cannot see resignations", func(t *testing.T) {
		f := newResourceFixture(t)

		rec := serve(t, f.analyticsHandler(middleware.RoleViewer), http.MethodGet, "/v1/analytics/resignations", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
