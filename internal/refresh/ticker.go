package refresh

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

// Toucher marks shared state as refreshed
type Toucher interface {
	Touch()
}

// Stop halts a ticker started by StartTicker. Calling it more than once is a no-op.
type Stop func()

// StartTicker touches toucher and publishes EventTick every interval until the returned
// Stop is called. The caller owns the ticker: pair every start with a stop on teardown.
// Starting a second ticker without stopping the first leaks the first one.
func (b *Bus) StartTicker(interval time.Duration, toucher Toucher) Stop {
	if interval <= 0 {
		logrus.WithField("interval", interval).Error("refresh: invalid ticker interval, ticker not started")
		return func() {}
	}

	ticker := b.clock.NewTicker(interval)
	done := make(chan struct{})

	logrus.WithField("interval", interval.String()).Info("refresh: ticker started")

	go func() {
		for {
			select {
			case <-done:
				return
			case t := <-ticker.Chan():
				// stop may race with a pending tick
				select {
				case <-done:
					return
				default:
				}

				if toucher != nil {
					toucher.Touch()
				}
				b.Publish(EventTick, domain.RefreshEvent{
					Kind:      domain.RefreshKindTick,
					Entity:    domain.EntityDashboard,
					Timestamp: t,
				})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
			logrus.Info("refresh: ticker stopped")
		})
	}
}
