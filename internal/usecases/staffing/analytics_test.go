package staffing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var analyticsNow = time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

func TestAnalytics_WorkforceAnalytics(t *testing.T) {
	ctx := context.Background()
	period := &domain.Period{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
	}

	t.Run("percentages are shares of the headcount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)

		repo.EXPECT().Headcount(ctx, period).Return(&domain.HeadcountSummary{Total: 3}, nil)
		repo.EXPECT().Breakdown(ctx, repository.DimensionDepartment, period).
			Return([]domain.BreakdownItem{{Name: "Engineering", Count: 2}, {Name: "Sales", Count: 1}}, nil)
		repo.EXPECT().Breakdown(ctx, repository.DimensionDesignation, period).
			Return([]domain.BreakdownItem{{Name: "Engineer", Count: 3}}, nil)
		repo.EXPECT().Breakdown(ctx, repository.DimensionLocation, period).Return(nil, nil)
		repo.EXPECT().SkillCounts(ctx, period).
			Return([]domain.BreakdownItem{{Name: "Go", Count: 3}, {Name: "SQL", Count: 2}}, nil)

		analytics, err := NewAnalyticsService(repo, clockwork.NewFakeClockAt(analyticsNow)).WorkforceAnalytics(ctx, period)

		require.NoError(t, err)
		assert.Equal(t, 3, analytics.Total)
		assert.Equal(t, period, analytics.Period)
		assert.Equal(t, []domain.BreakdownItem{
			{Name: "Engineering", Count: 2, Percentage: 67},
			{Name: "Sales", Count: 1, Percentage: 33},
		}, analytics.Departments)
		assert.Equal(t, 100, analytics.Designations[0].Percentage)
		assert.NotNil(t, analytics.Locations)
		assert.Empty(t, analytics.Locations)
		assert.Equal(t, 100, analytics.Skills[0].Percentage)
		assert.Equal(t, 67, analytics.Skills[1].Percentage)
	})

	t.Run("breakdown failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)

		repo.EXPECT().Headcount(ctx, nil).Return(&domain.HeadcountSummary{}, nil)
		repo.EXPECT().Breakdown(ctx, repository.DimensionDepartment, nil).Return(nil, errors.New("boom"))

		_, err := NewAnalyticsService(repo, nil).WorkforceAnalytics(ctx, nil)

		assertResourceError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestAnalytics_Lookahead(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("resignations default to sixty days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)

		want := domain.Period{
			Start: today,
			End:   time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		}
		repo.EXPECT().List(ctx, repository.ResourceFilters{Leaving: &want}).Return([]*domain.Resource{{ID: 4}}, nil)

		resources, err := NewAnalyticsService(repo, clockwork.NewFakeClockAt(analyticsNow)).ListResignations(ctx, 0)

		require.NoError(t, err)
		assert.Len(t, resources, 1)
	})

	t.Run("upcoming releases honour an explicit window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)

		window := domain.Period{
			Start: today,
			End:   time.Date(2025, time.June, 23, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		}
		repo.EXPECT().UpcomingReleases(ctx, window).
			Return([]*domain.UpcomingRelease{{ResourceID: 1, ProjectName: "Atlas"}}, nil)

		releases, err := NewAnalyticsService(repo, clockwork.NewFakeClockAt(analyticsNow)).ListUpcomingReleases(ctx, 7)

		require.NoError(t, err)
		require.Len(t, releases, 1)
		assert.Equal(t, []string{}, releases[0].Skills)
	})

	t.Run("window out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)
		service := NewAnalyticsService(repo, clockwork.NewFakeClockAt(analyticsNow))

		_, err := service.ListResignations(ctx, -1)
		assertResourceError(t, err, ErrInvalidLookahead, apiErrors.ErrInvalidFormat)

		_, err = service.ListUpcomingReleases(ctx, 366)
		assertResourceError(t, err, ErrInvalidLookahead, apiErrors.ErrInvalidFormat)
	})
}
