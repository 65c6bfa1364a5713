package daterange

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
)

type recordingPublisher struct {
	names  []string
	events []domain.RefreshEvent
}

func (r *recordingPublisher) Publish(name string, event domain.RefreshEvent) {
	r.names = append(r.names, name)
	r.events = append(r.events, event)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func assertPeriod(t *testing.T, p domain.Period, start, end string) {
	t.Helper()
	assert.Equal(t, start, p.Start.Format(time.DateOnly), "start")
	assert.Equal(t, end, p.End.Format(time.DateOnly), "end")
}

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want map[string][2]string
	}{
		{
			name: "mid year",
			now:  time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC),
			want: map[string][2]string{
				OptionCurrentMonth: {"2025-06-01", "2025-06-30"},
				OptionLastMonth:    {"2025-05-01", "2025-05-31"},
				OptionLast3Months:  {"2025-04-01", "2025-06-30"},
				OptionLast6Months:  {"2025-01-01", "2025-06-30"},
			},
		},
		{
			name: "january crosses the year boundary",
			now:  date(2025, 1, 10),
			want: map[string][2]string{
				OptionCurrentMonth: {"2025-01-01", "2025-01-31"},
				OptionLastMonth:    {"2024-12-01", "2024-12-31"},
				OptionLast3Months:  {"2024-11-01", "2025-01-31"},
				OptionLast6Months:  {"2024-08-01", "2025-01-31"},
			},
		},
		{
			name: "end of march does not overflow into march again",
			now:  date(2024, 3, 31),
			want: map[string][2]string{
				OptionCurrentMonth: {"2024-03-01", "2024-03-31"},
				OptionLastMonth:    {"2024-02-01", "2024-02-29"},
				OptionLast3Months:  {"2024-01-01", "2024-03-31"},
				OptionLast6Months:  {"2023-10-01", "2024-03-31"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := BuildOptions(tt.now)

			require.Len(t, options, 4)
			assert.Equal(t, []string{OptionCurrentMonth, OptionLastMonth, OptionLast3Months, OptionLast6Months},
				[]string{options[0].ID, options[1].ID, options[2].ID, options[3].ID})

			for _, option := range options {
				want := tt.want[option.ID]
				assertPeriod(t, option.Period, want[0], want[1])
				assert.False(t, option.Period.End.Before(option.Period.Start))
				assert.NotEmpty(t, option.Label)
			}
		})
	}
}

func TestStore_DefaultsToCurrentMonth(t *testing.T) {
	clock := clockwork.NewFakeClockAt(date(2025, 6, 15))
	store := NewStore(clock, nil)

	assert.Equal(t, OptionCurrentMonth, store.SelectedID())
	assertPeriod(t, store.Selected(), "2025-06-01", "2025-06-30")
	assert.Equal(t, date(2025, 6, 15), store.LastUpdated())
}

func TestStore_Select(t *testing.T) {
	for _, id := range []string{OptionCurrentMonth, OptionLastMonth, OptionLast3Months, OptionLast6Months} {
		t.Run(id, func(t *testing.T) {
			clock := clockwork.NewFakeClockAt(date(2025, 6, 15))
			publisher := &recordingPublisher{}
			store := NewStore(clock, publisher)

			clock.Advance(time.Minute)
			ok := store.Select(id)

			require.True(t, ok)
			var want domain.Period
			for _, option := range store.Options() {
				if option.ID == id {
					want = option.Period
				}
			}
			assert.Equal(t, want, store.Selected())
			assert.Equal(t, id, store.SelectedID())
			assert.Equal(t, date(2025, 6, 15).Add(time.Minute), store.LastUpdated())

			require.Len(t, publisher.events, 1)
			assert.Equal(t, refresh.EventPeriodChanged, publisher.names[0])
			assert.Equal(t, domain.RefreshKindPeriodChanged, publisher.events[0].Kind)
			assert.Equal(t, id, publisher.events[0].Operation)
		})
	}
}

func TestStore_SelectLast3Months(t *testing.T) {
	store := NewStore(clockwork.NewFakeClockAt(date(2025, 6, 15)), nil)

	require.True(t, store.Select(OptionLast3Months))
	assertPeriod(t, store.Selected(), "2025-04-01", "2025-06-30")
}

func TestStore_SelectUnknownIDIsIgnored(t *testing.T) {
	clock := clockwork.NewFakeClockAt(date(2025, 6, 15))
	publisher := &recordingPublisher{}
	store := NewStore(clock, publisher)
	require.True(t, store.Select(OptionLastMonth))

	before := store.Selected()
	lastUpdated := store.LastUpdated()
	clock.Advance(time.Hour)

	ok := store.Select("not-a-real-id")

	assert.False(t, ok)
	assert.Equal(t, before, store.Selected())
	assert.Equal(t, OptionLastMonth, store.SelectedID())
	assert.Equal(t, lastUpdated, store.LastUpdated())
	assert.Len(t, publisher.events, 1, "only the valid selection is published")
}

func TestStore_SelectedFallsBackToCurrentMonth(t *testing.T) {
	store := NewStore(clockwork.NewFakeClockAt(date(2025, 6, 15)), nil)
	store.selectedID = ""

	assertPeriod(t, store.Selected(), "2025-06-01", "2025-06-30")

	store = &Store{clock: clockwork.NewFakeClockAt(date(2025, 2, 3))}
	assertPeriod(t, store.Selected(), "2025-02-01", "2025-02-28")
}

func TestStore_Touch(t *testing.T) {
	clock := clockwork.NewFakeClockAt(date(2025, 6, 15))
	publisher := &recordingPublisher{}
	store := NewStore(clock, publisher)
	require.True(t, store.Select(OptionLast6Months))

	clock.Advance(30 * time.Second)
	store.Touch()

	assert.Equal(t, date(2025, 6, 15).Add(30*time.Second), store.LastUpdated())
	assert.Equal(t, OptionLast6Months, store.SelectedID())
	assert.Len(t, publisher.events, 1, "touch does not publish")
}

func TestStore_OptionsAreFixedUntilReload(t *testing.T) {
	clock := clockwork.NewFakeClockAt(date(2025, 6, 30))
	publisher := &recordingPublisher{}
	store := NewStore(clock, publisher)
	require.True(t, store.Select(OptionLastMonth))

	clock.Advance(48 * time.Hour)
	assertPeriod(t, store.Selected(), "2025-05-01", "2025-05-31")

	store.Reload()

	assert.Equal(t, OptionLastMonth, store.SelectedID())
	assertPeriod(t, store.Selected(), "2025-06-01", "2025-06-30")
	assert.Equal(t, date(2025, 7, 2), store.LastUpdated())
	require.Len(t, publisher.events, 2)
	assert.Equal(t, refresh.EventPeriodChanged, publisher.names[1])
}

func TestStore_OptionsReturnsCopy(t *testing.T) {
	store := NewStore(clockwork.NewFakeClockAt(date(2025, 6, 15)), nil)

	options := store.Options()
	options[0].ID = "mutated"

	assert.Equal(t, OptionCurrentMonth, store.Options()[0].ID)
}

func TestStore_State(t *testing.T) {
	store := NewStore(clockwork.NewFakeClockAt(date(2025, 6, 15)), nil)
	require.True(t, store.Select(OptionLast3Months))

	state := store.State()

	assert.Len(t, state.Options, 4)
	assert.Equal(t, OptionLast3Months, state.SelectedID)
	assertPeriod(t, state.Selected, "2025-04-01", "2025-06-30")
	assert.Equal(t, date(2025, 6, 15), state.LastUpdated)
}

func TestPeriod_Contains(t *testing.T) {
	p := CurrentMonth(date(2025, 6, 15))

	assert.True(t, p.Contains(date(2025, 6, 1)))
	assert.True(t, p.Contains(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(date(2025, 7, 1)))
	assert.False(t, p.Contains(date(2025, 5, 31)))
}
