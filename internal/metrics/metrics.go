// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vibeinvestor"

// Metrics represents the monitoring system. Each instance owns its registry
// so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec

	generations   *prometheus.CounterVec
	digestLookups *prometheus.CounterVec
	goalSyncRuns  *prometheus.CounterVec
	rateLimited   prometheus.Counter
	tradesCreated *prometheus.CounterVec
}

// New creates the collectors on a fresh registry. A nil *Metrics is valid
// and records nothing.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
			},
			[]string{"route", "method", "status"},
		),
		requestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "text_generations_total",
				Help:      "Calls to the text generator by purpose and outcome",
			},
			[]string{"purpose", "outcome"},
		),
		digestLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "digest_lookups_total",
				Help:      "Digest reads by the source that served them",
			},
			[]string{"source"},
		),
		goalSyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "goal_sync_runs_total",
				Help:      "Goal progress sync runs by outcome",
			},
			[]string{"outcome"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by the per-user rate limiter",
			},
		),
		tradesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trades_created_total",
				Help:      "Journaled trades by type and whether an analysis was recorded",
			},
			[]string{"type", "analysis"},
		),
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
	m.requestCount.WithLabelValues(route, method, code).Inc()
}

// ObserveGeneration records a text generator call. purpose is "advice" or "digest".
func (m *Metrics) ObserveGeneration(purpose string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.generations.WithLabelValues(purpose, outcome).Inc()
}

// ObserveDigest records which source served a digest read.
func (m *Metrics) ObserveDigest(source string) {
	if m == nil {
		return
	}
	m.digestLookups.WithLabelValues(source).Inc()
}

// ObserveGoalSync records a goal sync run.
func (m *Metrics) ObserveGoalSync(err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.goalSyncRuns.WithLabelValues(outcome).Inc()
}

// ObserveRateLimited records a rejected request.
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// RecordTrade records a journaled trade.
func (m *Metrics) RecordTrade(tradeType string, analysisRecorded bool) {
	if m == nil {
		return
	}
	m.tradesCreated.WithLabelValues(tradeType, strconv.FormatBool(analysisRecorded)).Inc()
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
