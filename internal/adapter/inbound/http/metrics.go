// Package http provides the optional HTTP listener for metrics and health.
package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the Threat Hunter bridge.
// Pass to components that need to record metrics.
type Metrics struct {
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	AuthFailures prometheus.Counter
}

// NewMetrics creates and registers all metrics with the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ToolCalls: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "threathunter",
				Name:      "tool_calls_total",
				Help:      "Total tool invocations by terminal state",
			},
			[]string{"tool", "outcome"}, // outcome=ok/auth_failed/query_failed
		),
		ToolDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "threathunter",
				Name:      "tool_duration_seconds",
				Help:      "Tool invocation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		AuthFailures: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "threathunter",
				Name:      "auth_failures_total",
				Help:      "Total Wazuh API authentication failures",
			},
		),
	}
}
