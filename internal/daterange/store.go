// Package daterange holds the globally selected reporting period of the dashboard.
package daterange

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
)

// Store is the single process-wide period selection. Create it once at startup
// and hand the reference to whoever needs it.
type Store struct {
	mu          sync.RWMutex
	clock       clockwork.Clock
	publisher   refresh.Publisher
	options     []domain.PeriodOption
	selectedID  string
	lastUpdated time.Time
}

// NewStore computes the option catalog against clock.Now() and selects the current month.
// publisher may be nil, in which case selections are not announced.
func NewStore(clock clockwork.Clock, publisher refresh.Publisher) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	now := clock.Now()
	return &Store{
		clock:       clock,
		publisher:   publisher,
		options:     BuildOptions(now),
		selectedID:  DefaultOption,
		lastUpdated: now,
	}
}

// Options returns the option catalog computed at initialization
func (s *Store) Options() []domain.PeriodOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	options := make([]domain.PeriodOption, len(s.options))
	copy(options, s.options)
	return options
}

// Select switches the selection to id and publishes periodChanged.
// Unknown ids are ignored and false is returned.
func (s *Store) Select(id string) bool {
	s.mu.Lock()
	option, ok := s.find(id)
	if !ok {
		s.mu.Unlock()
		logrus.WithField("period_id", id).Debug("daterange: unknown period ignored")
		return false
	}

	now := s.clock.Now()
	s.selectedID = id
	s.lastUpdated = now
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"period_id": id,
		"start":     option.Period.Start.Format(time.DateOnly),
		"end":       option.Period.End.Format(time.DateOnly),
	}).Info("daterange: period selected")

	s.announce(option, now)
	return true
}

// Selected returns the selected period, or the current month if the selection is not in the catalog
func (s *Store) Selected() domain.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if option, ok := s.find(s.selectedID); ok {
		return option.Period
	}
	return CurrentMonth(s.clock.Now())
}

func (s *Store) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Touch marks the data as refreshed without changing the selection
func (s *Store) Touch() {
	now := s.clock.Now()

	s.mu.Lock()
	s.lastUpdated = now
	s.mu.Unlock()
}

// Reload recomputes the catalog against now, keeping the selected id, and
// republishes the selected period. Used when the calendar month rolls over.
func (s *Store) Reload() {
	now := s.clock.Now()

	s.mu.Lock()
	s.options = BuildOptions(now)
	s.lastUpdated = now
	option, ok := s.find(s.selectedID)
	if !ok {
		s.selectedID = DefaultOption
		option, _ = s.find(DefaultOption)
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"period_id": option.ID,
		"start":     option.Period.Start.Format(time.DateOnly),
		"end":       option.Period.End.Format(time.DateOnly),
	}).Info("daterange: period options reloaded")

	s.announce(option, now)
}

// State returns a consistent snapshot of the store
func (s *Store) State() domain.PeriodState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	options := make([]domain.PeriodOption, len(s.options))
	copy(options, s.options)

	selected := CurrentMonth(s.clock.Now())
	if option, ok := s.find(s.selectedID); ok {
		selected = option.Period
	}

	return domain.PeriodState{
		Options:     options,
		SelectedID:  s.selectedID,
		Selected:    selected,
		LastUpdated: s.lastUpdated,
	}
}

// find must be called with the lock held
func (s *Store) find(id string) (domain.PeriodOption, bool) {
	for _, option := range s.options {
		if option.ID == id {
			return option, true
		}
	}
	return domain.PeriodOption{}, false
}

func (s *Store) announce(option domain.PeriodOption, at time.Time) {
	if s.publisher == nil {
		return
	}

	s.publisher.Publish(refresh.EventPeriodChanged, domain.RefreshEvent{
		Kind:      domain.RefreshKindPeriodChanged,
		Entity:    domain.EntityDashboard,
		Operation: option.ID,
		Payload:   option,
		Timestamp: at,
	})
}
