package refresh

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

type fakeRecorder struct {
	mu        sync.Mutex
	published map[string]int
	failures  map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{published: map[string]int{}, failures: map[string]int{}}
}

func (f *fakeRecorder) IncPublished(event string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[event]++
}

func (f *fakeRecorder) IncHandlerFailure(event string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[event]++
}

func (f *fakeRecorder) SetSubscribers(string, int) {}
func (f *fakeRecorder) IncDropped(string)          {}

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus()

	var calls []string
	bus.Subscribe([]string{"resourceCreated"}, func(domain.RefreshEvent) { calls = append(calls, "first") })
	bus.Subscribe([]string{"resourceCreated"}, func(domain.RefreshEvent) { calls = append(calls, "second") })

	bus.Publish("resourceCreated", domain.RefreshEvent{Kind: domain.RefreshKindCreated, Entity: domain.EntityResource})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_Publish(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		subscribe []string
		publish   string
		event     domain.RefreshEvent
		wantCalls int
		wantTime  time.Time
	}{
		{
			name:      "handler receives event for a subscribed name",
			subscribe: []string{"projectUpdated"},
			publish:   "projectUpdated",
			event:     domain.RefreshEvent{Kind: domain.RefreshKindUpdated, Entity: domain.EntityProject},
			wantCalls: 1,
			wantTime:  fixed,
		},
		{
			name:      "handler ignores other names",
			subscribe: []string{"projectUpdated"},
			publish:   "projectDeleted",
			event:     domain.RefreshEvent{Kind: domain.RefreshKindDeleted, Entity: domain.EntityProject},
			wantCalls: 0,
		},
		{
			name:      "duplicated names register the handler once",
			subscribe: []string{"tick", "tick"},
			publish:   "tick",
			event:     domain.RefreshEvent{Kind: domain.RefreshKindTick},
			wantCalls: 1,
			wantTime:  fixed,
		},
		{
			name:      "timestamp set by the publisher is kept",
			subscribe: []string{"escalationCreated"},
			publish:   "escalationCreated",
			event: domain.RefreshEvent{
				Kind:      domain.RefreshKindCreated,
				Entity:    domain.EntityEscalation,
				Timestamp: fixed.Add(-time.Hour),
			},
			wantCalls: 1,
			wantTime:  fixed.Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewBus(WithClock(clockwork.NewFakeClockAt(fixed)))

			var received []domain.RefreshEvent
			bus.Subscribe(tt.subscribe, func(e domain.RefreshEvent) { received = append(received, e) })

			bus.Publish(tt.publish, tt.event)

			assert.Len(t, received, tt.wantCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, tt.wantTime, received[0].Timestamp)
				assert.Equal(t, tt.event.Kind, received[0].Kind)
			}
		})
	}
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	recorder := newFakeRecorder()
	bus := NewBus(WithRecorder(recorder))

	secondCalled := false
	bus.Subscribe([]string{"financialDataUpdated"}, func(domain.RefreshEvent) { panic("boom") })
	bus.Subscribe([]string{"financialDataUpdated"}, func(domain.RefreshEvent) { secondCalled = true })

	assert.NotPanics(t, func() {
		bus.Publish("financialDataUpdated", domain.RefreshEvent{Kind: domain.RefreshKindUpdated})
	})

	assert.True(t, secondCalled)
	assert.Equal(t, 1, recorder.published["financialDataUpdated"])
	assert.Equal(t, 1, recorder.failures["financialDataUpdated"])
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	removedCalls := 0
	keptCalls := 0
	unsubscribe := bus.Subscribe([]string{"resourceDeleted", "periodChanged"}, func(domain.RefreshEvent) { removedCalls++ })
	bus.Subscribe([]string{"resourceDeleted"}, func(domain.RefreshEvent) { keptCalls++ })

	unsubscribe()
	unsubscribe()

	bus.Publish("resourceDeleted", domain.RefreshEvent{Kind: domain.RefreshKindDeleted})
	bus.Publish("periodChanged", domain.RefreshEvent{Kind: domain.RefreshKindPeriodChanged})

	assert.Equal(t, 0, removedCalls)
	assert.Equal(t, 1, keptCalls)
	assert.Equal(t, 1, bus.SubscriberCount("resourceDeleted"))
	assert.Equal(t, 0, bus.SubscriberCount("periodChanged"))
}

func TestBus_HandlerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	lateCalls := 0
	bus.Subscribe([]string{"tick"}, func(domain.RefreshEvent) {
		bus.Subscribe([]string{"tick"}, func(domain.RefreshEvent) { lateCalls++ })
	})

	bus.Publish("tick", domain.RefreshEvent{Kind: domain.RefreshKindTick})
	assert.Equal(t, 0, lateCalls, "handlers added during a publish only see later publishes")

	bus.Publish("tick", domain.RefreshEvent{Kind: domain.RefreshKindTick})
	assert.Equal(t, 1, lateCalls)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(CRUDEvents(), func(domain.RefreshEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for _, name := range CRUDEvents() {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			bus.Publish(name, domain.RefreshEvent{Kind: domain.RefreshKindUpdated})
		}(name)
	}
	wg.Wait()

	assert.Equal(t, len(CRUDEvents()), calls)
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "projectCreated", EventName(domain.EntityProject, "created"))
	assert.Equal(t, "financialDataUpdated", EventName(domain.EntityFinancialData, OperationUpdated))
	assert.Equal(t, "escalationDeleted", EventName(domain.EntityEscalation, "deleted"))
	assert.Equal(t, "resource", EventName(domain.EntityResource, ""))

	assert.Len(t, CRUDEvents(), 12)
	assert.True(t, IsKnownEvent("tick"))
	assert.True(t, IsKnownEvent("resourceUpdated"))
	assert.False(t, IsKnownEvent("dateFilterChanged"))

	assert.Equal(t, domain.RefreshKindCreated, KindForOperation(OperationCreated))
	assert.Equal(t, domain.RefreshKindDeleted, KindForOperation("deleted"))
	assert.Equal(t, domain.RefreshKindUpdated, KindForOperation(OperationUpdated))
}

func TestPublishWrite(t *testing.T) {
	fixed := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	bus := NewBus(WithClock(clockwork.NewFakeClockAt(fixed)))

	var received []domain.RefreshEvent
	bus.Subscribe([]string{"escalationCreated"}, func(e domain.RefreshEvent) { received = append(received, e) })

	PublishWrite(bus, domain.EntityEscalation, OperationCreated, map[string]int{"id": 3})

	if assert.Len(t, received, 1) {
		assert.Equal(t, domain.RefreshKindCreated, received[0].Kind)
		assert.Equal(t, domain.EntityEscalation, received[0].Entity)
		assert.Equal(t, OperationCreated, received[0].Operation)
		assert.Equal(t, map[string]int{"id": 3}, received[0].Payload)
		assert.Equal(t, fixed, received[0].Timestamp)
	}
}
