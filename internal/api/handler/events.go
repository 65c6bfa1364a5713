package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
	"github.com/vfg2006/workforce-dashboard-api/pkg/utils"
)

const (
	defaultStreamBuffer    = 16
	defaultStreamKeepalive = 30 * time.Second

	// how long a disconnected EventSource waits before reconnecting
	streamReconnectDelay = 3 * time.Second
)

type streamMessage struct {
	name  string
	event domain.RefreshEvent
}

// StreamEvents relays refresh bus events to the client as Server-Sent Events.
// The subscription lives as long as the request. A client that falls behind
// by more than the buffer loses events rather than stalling the publisher.
func StreamEvents(subscriber refresh.Subscriber, cfg config.Refresh, recorder metrics.Recorder, clock clockwork.Clock) http.Handler {
	buffer := cfg.EventStreamBuffer
	if buffer <= 0 {
		buffer = defaultStreamBuffer
	}
	keepalive := cfg.EventStreamIdle
	if keepalive <= 0 {
		keepalive = defaultStreamKeepalive
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := streamEventNames(r.URL.Query().Get("events"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "streaming not supported", nil)
			return
		}

		clientID, err := utils.GenerateID(12)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error creating stream", nil)
			return
		}
		logger := log.ForContext(r.Context()).WithField("client_id", clientID)

		messages := make(chan streamMessage, buffer)
		unsubscribe := subscribeNamed(subscriber, names, func(name string, event domain.RefreshEvent) {
			select {
			case messages <- streamMessage{name: name, event: event}:
			default:
				recorder.IncDropped(name)
				logger.WithField("event", name).Warn("event stream full, dropping event")
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		fmt.Fprintf(w, "retry: %d\n\n", streamReconnectDelay.Milliseconds())
		flusher.Flush()

		logger.WithField("events", strings.Join(names, ",")).Info("event stream opened")

		ticker := clock.NewTicker(keepalive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				logger.Info("event stream closed")
				return
			case <-ticker.Chan():
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			case msg := <-messages:
				if err := writeStreamEvent(w, msg); err != nil {
					logger.WithError(err).Warn("error writing event, closing stream")
					return
				}
				flusher.Flush()
			}
		}
	})
}

// subscribeNamed registers one handler per name so the stream knows which
// name an event was published under
func subscribeNamed(subscriber refresh.Subscriber, names []string, handle func(string, domain.RefreshEvent)) refresh.Unsubscribe {
	unsubscribes := make([]refresh.Unsubscribe, 0, len(names))
	for _, name := range names {
		unsubscribes = append(unsubscribes, subscriber.Subscribe([]string{name}, func(event domain.RefreshEvent) {
			handle(name, event)
		}))
	}

	return func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
}

func streamEventNames(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return refresh.AllEvents(), nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		if !refresh.IsKnownEvent(name) {
			return nil, fmt.Errorf("unknown event %q", name)
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return refresh.AllEvents(), nil
	}

	return names, nil
}

func writeStreamEvent(w http.ResponseWriter, msg streamMessage) error {
	data, err := json.Marshal(msg.event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.name, data)
	return err
}
