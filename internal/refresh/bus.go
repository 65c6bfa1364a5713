// Package refresh implements the in-process publish/subscribe bus that tells
// dashboard views when to re-fetch their data.
package refresh

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
)

// Handler reacts to a published RefreshEvent. It runs on the publisher's goroutine.
type Handler func(event domain.RefreshEvent)

// Unsubscribe removes every registration made by the Subscribe call that returned it
type Unsubscribe func()

type Publisher interface {
	Publish(name string, event domain.RefreshEvent)
}

type Subscriber interface {
	Subscribe(names []string, handler Handler) Unsubscribe
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus maps event names to handlers kept in registration order
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]registration
	nextID   uint64
	clock    clockwork.Clock
	recorder metrics.Recorder
}

type Option func(*Bus)

func WithClock(clock clockwork.Clock) Option {
	return func(b *Bus) {
		b.clock = clock
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(b *Bus) {
		b.recorder = recorder
	}
}

func NewBus(opts ...Option) *Bus {
	bus := &Bus{
		handlers: make(map[string][]registration),
		clock:    clockwork.NewRealClock(),
		recorder: metrics.NoopRecorder{},
	}

	for _, opt := range opts {
		opt(bus)
	}

	return bus
}

// Subscribe registers handler for every name in names. Duplicated names are registered once.
func (b *Bus) Subscribe(names []string, handler Handler) Unsubscribe {
	if handler == nil || len(names) == 0 {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID

	registered := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		b.handlers[name] = append(b.handlers[name], registration{id: id, handler: handler})
		registered = append(registered, name)
		b.recorder.SetSubscribers(name, len(b.handlers[name]))
	}
	b.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"subscription_id": id,
		"events":          registered,
	}).Debug("refresh: handler registered")

	var once sync.Once
	return func() {
		once.Do(func() {
			b.remove(id, registered)
		})
	}
}

func (b *Bus) remove(id uint64, names []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, name := range names {
		current := b.handlers[name]
		kept := make([]registration, 0, len(current))
		for _, reg := range current {
			if reg.id != id {
				kept = append(kept, reg)
			}
		}

		if len(kept) == 0 {
			delete(b.handlers, name)
		} else {
			b.handlers[name] = kept
		}
		b.recorder.SetSubscribers(name, len(kept))
	}

	logrus.WithField("subscription_id", id).Debug("refresh: handler removed")
}

// Publish delivers event to the handlers registered for name, synchronously and in
// registration order. A panicking handler is logged and skipped.
func (b *Bus) Publish(name string, event domain.RefreshEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = b.clock.Now()
	}

	b.mu.RLock()
	snapshot := make([]registration, len(b.handlers[name]))
	copy(snapshot, b.handlers[name])
	b.mu.RUnlock()

	b.recorder.IncPublished(name)

	for _, reg := range snapshot {
		b.deliver(name, reg, event)
	}
}

func (b *Bus) deliver(name string, reg registration, event domain.RefreshEvent) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]

			b.recorder.IncHandlerFailure(name)
			logrus.WithFields(logrus.Fields{
				"event":           name,
				"subscription_id": reg.id,
				"panic":           fmt.Sprint(r),
				"stack_trace":     string(stack),
			}).Error("refresh: handler failed while delivering event")
		}
	}()

	reg.handler(event)
}

// SubscriberCount returns how many handlers are registered for name
func (b *Bus) SubscriberCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}
