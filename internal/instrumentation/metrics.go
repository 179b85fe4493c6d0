package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks execution metrics for monitoring.
type Metrics struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the execution metrics and registers them with the given
// registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcp_aks",
			Name:      "tool_executions_total",
			Help:      "Number of kubectl tool executions by backend and status.",
		}, []string{"backend", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mcp_aks",
			Name:      "tool_execution_duration_seconds",
			Help:      "Duration of kubectl tool executions by backend.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"backend"}),
	}

	for _, c := range []prometheus.Collector{m.executions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordExecution records one completed tool execution.
// A nil receiver is a no-op so the router can run without metrics.
func (m *Metrics) RecordExecution(backend, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.executions.WithLabelValues(backend, status).Inc()
	m.duration.WithLabelValues(backend).Observe(duration.Seconds())
}
