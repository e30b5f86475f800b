package metrics

import (
	"time"

	"ride-escrow-network/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the job engine and the HTTP surface.
// It implements ports.Metrics.
type Metrics struct {
	JobTransitions   *prometheus.CounterVec
	EscrowCents      *prometheus.CounterVec
	InfrasRegistered *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New creates a Metrics instance with every collector registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		JobTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ride_job_transitions_total",
			Help: "Committed job transitions by resulting status",
		}, []string{"status"}),
		EscrowCents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ride_escrow_moved_cents_total",
			Help: "Cents moved out of job escrow by payout line",
		}, []string{"label"}),
		InfrasRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ride_infras_registered_total",
			Help: "Infras registered by side",
		}, []string{"side"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ride_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ride_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}
}

// JobTransition records a committed transition into status.
func (m *Metrics) JobTransition(status domain.JobStatus) {
	m.JobTransitions.WithLabelValues(string(status)).Inc()
}

// EscrowMoved adds amountCent to the payout line total.
func (m *Metrics) EscrowMoved(label domain.PayoutLabel, amountCent int64) {
	if amountCent <= 0 {
		return
	}
	m.EscrowCents.WithLabelValues(string(label)).Add(float64(amountCent))
}

// InfraRegistered records a new infra on side.
func (m *Metrics) InfraRegistered(side domain.InfraSide) {
	m.InfrasRegistered.WithLabelValues(string(side)).Inc()
}

// RecordHTTPRequest records one served request. Call with time.Now() taken
// before the handler ran.
func (m *Metrics) RecordHTTPRequest(method, route, status string, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// Nop discards every observation. Used when metrics are disabled.
type Nop struct{}

func (Nop) JobTransition(domain.JobStatus)        {}
func (Nop) EscrowMoved(domain.PayoutLabel, int64) {}
func (Nop) InfraRegistered(domain.InfraSide)      {}
