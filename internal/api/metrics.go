package api

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects HTTP shell metrics on a private registry so several
// servers (and tests) never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	events         *prometheus.CounterVec
	commits        prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetrics registers the studio collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "studio",
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "studio",
				Name:      "events_total",
				Help:      "Dispatched canvas events by kind.",
			},
			[]string{"kind"},
		),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "history_commits_total",
			Help:      "Events that moved the undo history.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "studio",
			Name:      "active_sessions",
			Help:      "Open editing sessions.",
		}),
	}
	m.registry.MustRegister(m.requests, m.events, m.commits, m.activeSessions)
	return m
}

// RecordRequest counts one served request.
func (m *Metrics) RecordRequest(method, route string, status int) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordEvent counts one dispatched event and whether it moved history.
func (m *Metrics) RecordEvent(kind string, committed bool) {
	m.events.WithLabelValues(kind).Inc()
	if committed {
		m.commits.Inc()
	}
}

// SessionOpened and SessionClosed track the active session gauge.
func (m *Metrics) SessionOpened() { m.activeSessions.Inc() }

func (m *Metrics) SessionClosed() { m.activeSessions.Dec() }

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
