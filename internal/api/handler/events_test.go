package handler

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
)

func TestStreamEventNames(t *testing.T) {
	names, err := streamEventNames("")
	require.NoError(t, err)
	assert.Equal(t, refresh.AllEvents(), names)

	names, err = streamEventNames("projectCreated, tick,projectCreated")
	require.NoError(t, err)
	assert.Equal(t, []string{"projectCreated", "tick"}, names)

	_, err = streamEventNames("projectArchived")
	assert.Error(t, err)
}

func TestStreamEvents(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	bus := refresh.NewBus(refresh.WithClock(clock))
	cfg := config.Refresh{EventStreamBuffer: 4, EventStreamIdle: time.Minute}

	srv := httptest.NewServer(StreamEvents(bus, cfg, metrics.NoopRecorder{}, clock))
	defer srv.Close()

	t.Run("unknown event is rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "?events=nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, bus.SubscriberCount("nope"))
	})

	t.Run("reconnect hint does not follow the keepalive interval", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?events=tick", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		line, err := bufio.NewReader(resp.Body).ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "retry: 3000", strings.TrimSpace(line))

		cancel()
		require.Eventually(t, func() bool {
			return bus.SubscriberCount("tick") == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("relays subscribed events until the client leaves", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?events=projectCreated", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		require.Eventually(t, func() bool {
			return bus.SubscriberCount("projectCreated") == 1
		}, time.Second, 5*time.Millisecond)

		// not subscribed, must not reach the stream
		refresh.PublishWrite(bus, domain.EntityResource, refresh.OperationCreated, map[string]int{"id": 1})
		refresh.PublishWrite(bus, domain.EntityProject, refresh.OperationCreated, map[string]int{"id": 2})

		reader := bufio.NewReader(resp.Body)
		var lines []string
		for len(lines) < 2 || !strings.HasPrefix(lines[len(lines)-1], "data:") {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "retry:") {
				continue
			}
			lines = append(lines, line)
		}

		assert.Equal(t, "event: projectCreated", lines[0])
		assert.Contains(t, lines[1], `"entity":"project"`)
		assert.Contains(t, lines[1], `"kind":"created"`)

		cancel()
		require.Eventually(t, func() bool {
			return bus.SubscriberCount("projectCreated") == 0
		}, time.Second, 5*time.Millisecond)
	})
}
