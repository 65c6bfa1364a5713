// Package metrics exposes the Prometheus collectors used by the refresh bus and the HTTP layer.
package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives refresh bus observations
type Recorder interface {
	IncPublished(event string)
	IncHandlerFailure(event string)
	SetSubscribers(event string, n int)
	IncDropped(event string)
}

// NoopRecorder discards every observation
type NoopRecorder struct{}

func (NoopRecorder) IncPublished(string)        {}
func (NoopRecorder) IncHandlerFailure(string)   {}
func (NoopRecorder) SetSubscribers(string, int) {}
func (NoopRecorder) IncDropped(string)          {}

// PrometheusRecorder implements Recorder using Prometheus metrics
type PrometheusRecorder struct {
	published       *prom.CounterVec
	handlerFailures *prom.CounterVec
	subscribers     *prom.GaugeVec
	dropped         *prom.CounterVec
}

// NewPrometheusRecorder builds the collectors and registers them on reg
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		published: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "refresh",
			Name:      "events_published_total",
			Help:      "Refresh events published by event name",
		}, []string{"event"}),
		handlerFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "refresh",
			Name:      "handler_failures_total",
			Help:      "Refresh handlers that panicked during delivery",
		}, []string{"event"}),
		subscribers: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "dashboard",
			Subsystem: "refresh",
			Name:      "subscribers",
			Help:      "Handlers currently registered by event name",
		}, []string{"event"}),
		dropped: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "events_stream",
			Name:      "dropped_total",
			Help:      "Events dropped because a stream client was too slow",
		}, []string{"event"}),
	}

	reg.MustRegister(pr.published, pr.handlerFailures, pr.subscribers, pr.dropped)

	return pr
}

func (p *PrometheusRecorder) IncPublished(event string) {
	p.published.WithLabelValues(event).Inc()
}

func (p *PrometheusRecorder) IncHandlerFailure(event string) {
	p.handlerFailures.WithLabelValues(event).Inc()
}

func (p *PrometheusRecorder) SetSubscribers(event string, n int) {
	p.subscribers.WithLabelValues(event).Set(float64(n))
}

func (p *PrometheusRecorder) IncDropped(event string) {
	p.dropped.WithLabelValues(event).Inc()
}

// HTTPHandler serves the metrics gathered by reg
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
