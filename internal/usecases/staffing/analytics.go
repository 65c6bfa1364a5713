package staffing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

// Lookahead windows in days, counted from today
const (
	DefaultResignationDays = 60
	DefaultReleaseDays     = 62
	maxLookaheadDays       = 365
)

type AnalyticsService interface {
	WorkforceAnalytics(ctx context.Context, period *domain.Period) (*domain.WorkforceAnalytics, error)
	ListResignations(ctx context.Context, days int) ([]*domain.Resource, error)
	ListUpcomingReleases(ctx context.Context, days int) ([]*domain.UpcomingRelease, error)
}

type Analytics struct {
	resourceRepo repository.ResourceRepository
	clock        clockwork.Clock
}

func NewAnalyticsService(resourceRepo repository.ResourceRepository, clock clockwork.Clock) AnalyticsService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Analytics{
		resourceRepo: resourceRepo,
		clock:        clock,
	}
}

// WorkforceAnalytics breaks the resources active in the period down by department,
// designation, location and skill. Percentages are shares of the headcount, so
// skill percentages can add up to more than 100.
func (a *Analytics) WorkforceAnalytics(ctx context.Context, period *domain.Period) (*domain.WorkforceAnalytics, error) {
	headcount, err := a.resourceRepo.Headcount(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error counting resources")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to count resources")
	}

	analytics := &domain.WorkforceAnalytics{
		Period: period,
		Total:  headcount.Total,
	}

	breakdowns := []struct {
		dimension string
		target    *[]domain.BreakdownItem
	}{
		{dimension: repository.DimensionDepartment, target: &analytics.Departments},
		{dimension: repository.DimensionDesignation, target: &analytics.Designations},
		{dimension: repository.DimensionLocation, target: &analytics.Locations},
	}

	for _, b := range breakdowns {
		items, err := a.resourceRepo.Breakdown(ctx, b.dimension, period)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("dimension", b.dimension).Error("error breaking down resources")
			return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to break down resources by "+b.dimension)
		}
		*b.target = withPercentages(items, headcount.Total)
	}

	skills, err := a.resourceRepo.SkillCounts(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error counting skills")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to count skills")
	}
	analytics.Skills = withPercentages(skills, headcount.Total)

	return analytics, nil
}

// ListResignations returns the resources whose last working day is between today and the lookahead
func (a *Analytics) ListResignations(ctx context.Context, days int) ([]*domain.Resource, error) {
	window, err := a.lookahead(days, DefaultResignationDays)
	if err != nil {
		return nil, err
	}

	resources, err := a.resourceRepo.List(ctx, repository.ResourceFilters{Leaving: &window})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing resignations")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list resignations")
	}

	return resources, nil
}

// ListUpcomingReleases returns the resources whose project ends between today and the lookahead
func (a *Analytics) ListUpcomingReleases(ctx context.Context, days int) ([]*domain.UpcomingRelease, error) {
	window, err := a.lookahead(days, DefaultReleaseDays)
	if err != nil {
		return nil, err
	}

	releases, err := a.resourceRepo.UpcomingReleases(ctx, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing upcoming releases")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list upcoming releases")
	}

	for _, release := range releases {
		if release.Skills == nil {
			release.Skills = []string{}
		}
	}

	return releases, nil
}

// lookahead spans from the start of today to the end of the day `days` days ahead.
// Zero selects the fallback.
func (a *Analytics) lookahead(days, fallback int) (domain.Period, error) {
	if days == 0 {
		days = fallback
	}
	if days < 0 || days > maxLookaheadDays {
		return domain.Period{}, NewResourceError(ErrInvalidLookahead, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("days must be between 1 and %d", maxLookaheadDays))
	}

	now := a.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return domain.Period{
		Start: today,
		End:   today.AddDate(0, 0, days+1).Add(-time.Nanosecond),
	}, nil
}

func withPercentages(items []domain.BreakdownItem, total int) []domain.BreakdownItem {
	if items == nil {
		return []domain.BreakdownItem{}
	}
	if total <= 0 {
		return items
	}
	for i := range items {
		items[i].Percentage = int(math.Round(float64(items[i].Count) * 100 / float64(total)))
	}
	return items
}
