package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the KYC simulator.
type Metrics struct {
	Verifications *prometheus.CounterVec
	Flows         *prometheus.CounterVec
	FlowDuration  prometheus.Histogram
}

// New creates and registers all KYC metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kycsim_verifications_total",
			Help: "Simulated verifications by method and outcome",
		}, []string{"method", "outcome"}),
		Flows: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kycsim_flows_total",
			Help: "Completed KYC flows by outcome",
		}, []string{"outcome"}),
		FlowDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kycsim_flow_duration_seconds",
			Help:    "Wall time of orchestrated KYC flows",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveVerification records one simulated verification.
func (m *Metrics) ObserveVerification(method string, verified bool) {
	outcome := "verified"
	if !verified {
		outcome = "rejected"
	}
	m.Verifications.WithLabelValues(method, outcome).Inc()
}

// ObserveFlow records one orchestrated flow.
func (m *Metrics) ObserveFlow(success bool, elapsed time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.Flows.WithLabelValues(outcome).Inc()
	m.FlowDuration.Observe(elapsed.Seconds())
}
