package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

const refreshTimeout = 10 * time.Second

// PeriodSource is the part of the date range store the view depends on
type PeriodSource interface {
	Selected() domain.Period
	Touch()
}

// View keeps the latest summary for the selected period and re-fetches it
// whenever the refresh bus reports a change.
type View struct {
	mu         sync.RWMutex
	summarizer Summarizer
	periods    PeriodSource
	latest     *domain.DashboardSummary
	issued     uint64
	stored     uint64
}

func NewView(summarizer Summarizer, periods PeriodSource) *View {
	return &View{
		summarizer: summarizer,
		periods:    periods,
	}
}

// Mount loads the first summary and subscribes the view to every refresh event.
// The returned Unsubscribe must be called when the view is torn down.
func (v *View) Mount(subscriber refresh.Subscriber) refresh.Unsubscribe {
	v.Refresh(context.Background())
	return subscriber.Subscribe(refresh.AllEvents(), v.handle)
}

func (v *View) handle(event domain.RefreshEvent) {
	switch event.Kind {
	case domain.RefreshKindCreated, domain.RefreshKindUpdated, domain.RefreshKindDeleted:
		v.periods.Touch()
	}

	log.L.WithFields(log.Fields{
		"event":  event.Kind,
		"entity": event.Entity,
	}).Debug("dashboard: refreshing summary")

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	v.Refresh(ctx)
}

// Refresh re-queries the summary for the currently selected period.
// A result is only cached when no later refresh has stored one and the
// selection has not moved while the queries ran.
func (v *View) Refresh(ctx context.Context) *domain.DashboardSummary {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	v.mu.Unlock()

	period := v.periods.Selected()
	summary := v.summarizer.Summary(ctx, period)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq < v.stored || !period.Equal(v.periods.Selected()) {
		log.L.WithFields(log.Fields{
			"start": period.Start.Format(time.DateOnly),
			"end":   period.End.Format(time.DateOnly),
		}).Debug("dashboard: discarding stale summary")

		if v.latest != nil {
			return v.latest
		}
		return summary
	}

	v.latest = summary
	v.stored = seq
	return summary
}

// Snapshot returns the cached summary, loading it on first use
func (v *View) Snapshot(ctx context.Context) *domain.DashboardSummary {
	v.mu.RLock()
	latest := v.latest
	v.mu.RUnlock()

	if latest != nil {
		return latest
	}
	return v.Refresh(ctx)
}
