// Package metrics collects and exposes Prometheus metrics for command execution.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcome labels.
const (
	StatusOK          = "ok"
	StatusParseError  = "parse_error"
	StatusFailed      = "failed"
	StatusRuleBlocked = "rule_blocked"
)

// Recorder is what the logic layer needs from a collector.
type Recorder interface {
	RecordCommand(command, status string, duration time.Duration)
	RecordState(persons, logs int)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	commands *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	persons  prometheus.Gauge
	logs     prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scrolls_commands_total",
			Help: "Executed commands by command word and outcome.",
		}, []string{"command", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scrolls_command_duration_seconds",
			Help:    "Command execution latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		persons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scrolls_persons",
			Help: "Persons in the committed state.",
		}),
		logs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scrolls_logs",
			Help: "Logs in the committed state.",
		}),
	}

	reg.MustRegister(c.commands, c.latency, c.persons, c.logs)
	return c
}

// RecordCommand counts one command execution and observes its latency.
func (c *Collector) RecordCommand(command, status string, duration time.Duration) {
	c.commands.WithLabelValues(command, status).Inc()
	c.latency.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordState sets the entity gauges.
func (c *Collector) RecordState(persons, logs int) {
	c.persons.Set(float64(persons))
	c.logs.Set(float64(logs))
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute returns a mux serving /metrics.
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordCommand(string, string, time.Duration) {}
func (Nop) RecordState(int, int)                        {}
