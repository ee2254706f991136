// Package metrics exports runner activity as Prometheus metrics.
//
// Label values are bounded: there are no per-player labels.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records gameplay and session activity. It is safe for concurrent
// use by every SSH session.
type Metrics struct {
	registry *prometheus.Registry

	runsStarted prometheus.Counter
	coins       prometheus.Counter
	hits        prometheus.Counter
	gameOvers   prometheus.Counter
	finalScore  prometheus.Histogram

	sessionsActive   prometheus.Gauge
	sessionsTotal    prometheus.Counter
	sessionsRejected *prometheus.CounterVec

	tickDuration prometheus.Histogram
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "runner_runs_started_total",
			Help: "Runs started, including restarts",
		}),
		coins: f.NewCounter(prometheus.CounterOpts{
			Name: "runner_coins_collected_total",
			Help: "Coins collected",
		}),
		hits: f.NewCounter(prometheus.CounterOpts{
			Name: "runner_obstacle_hits_total",
			Help: "Obstacles that hit a player",
		}),
		gameOvers: f.NewCounter(prometheus.CounterOpts{
			Name: "runner_game_overs_total",
			Help: "Runs that ended with no lives left",
		}),
		finalScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "runner_final_score",
			Help:    "Score at game over",
			Buckets: []float64{0, 10, 20, 50, 100, 200, 500, 1000},
		}),
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "runner_ssh_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "runner_ssh_sessions_total",
			Help: "SSH sessions accepted",
		}),
		sessionsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "runner_ssh_sessions_rejected_total",
			Help: "SSH sessions turned away",
		}, []string{"reason"}), // "rate_limit", "no_pty"
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "runner_tick_duration_seconds",
			Help:    "Time spent in one simulation tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
		}),
	}
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RunStarted counts a new run.
func (m *Metrics) RunStarted() {
	m.runsStarted.Inc()
}

// CoinCollected counts a collected coin.
func (m *Metrics) CoinCollected(int) {
	m.coins.Inc()
}

// ObstacleHit counts an obstacle hit.
func (m *Metrics) ObstacleHit(int) {
	m.hits.Inc()
}

// GameOver counts a finished run and records its score.
func (m *Metrics) GameOver(score int) {
	m.gameOvers.Inc()
	m.finalScore.Observe(float64(score))
}

// SessionOpened tracks an accepted SSH session.
func (m *Metrics) SessionOpened() {
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionClosed tracks the end of an SSH session.
func (m *Metrics) SessionClosed() {
	m.sessionsActive.Dec()
}

// SessionRejected counts a refused session.
func (m *Metrics) SessionRejected(reason string) {
	m.sessionsRejected.WithLabelValues(reason).Inc()
}

// ObserveTick records how long one simulation tick took.
func (m *Metrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}
