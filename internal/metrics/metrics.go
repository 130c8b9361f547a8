// Package metrics exposes Prometheus instruments for ledger transitions.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/whistkeeper/internal/models"
)

// Metrics holds the collectors registered for one server.
type Metrics struct {
	registry *prometheus.Registry

	roundsRecorded *prometheus.CounterVec
	roundsDeleted  prometheus.Counter
	roundPoints    prometheus.Histogram
	gameNights     *prometheus.CounterVec
	saveFailures   prometheus.Counter
}

// New creates the collectors on a fresh registry, along with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		roundsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whist",
			Name:      "rounds_recorded_total",
			Help:      "Rounds added to a game night, by trump type and outcome.",
		}, []string{"trump_type", "success"}),
		roundsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whist",
			Name:      "rounds_deleted_total",
			Help:      "Rounds removed from a game night.",
		}),
		roundPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "whist",
			Name:      "round_points",
			Help:      "Absolute points moved by a recorded round.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		gameNights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whist",
			Name:      "game_nights_total",
			Help:      "Game night lifecycle transitions.",
		}, []string{"event"}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whist",
			Name:      "state_save_failures_total",
			Help:      "Transitions discarded because the state could not be saved.",
		}),
	}

	m.registry.MustRegister(
		m.roundsRecorded,
		m.roundsDeleted,
		m.roundPoints,
		m.gameNights,
		m.saveFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RoundRecorded counts a new round and observes its point swing.
func (m *Metrics) RoundRecorded(r models.Round) {
	m.roundsRecorded.WithLabelValues(string(r.TrumpType), strconv.FormatBool(r.Success)).Inc()
	points := r.Points
	if points < 0 {
		points = -points
	}
	m.roundPoints.Observe(float64(points))
}

// RoundDeleted counts a removed round.
func (m *Metrics) RoundDeleted() {
	m.roundsDeleted.Inc()
}

// GameNightEvent counts a lifecycle event: "created", "ended" or "deleted".
func (m *Metrics) GameNightEvent(event string) {
	m.gameNights.WithLabelValues(event).Inc()
}

// SaveFailed counts a transition that could not be persisted.
func (m *Metrics) SaveFailed() {
	m.saveFailures.Inc()
}
