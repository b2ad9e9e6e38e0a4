package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeConflict    = "conflict"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeLocked      = "locked"
)

// Metrics holds all Prometheus metrics for the portal
type Metrics struct {
	EnrollmentsTotal    *prometheus.CounterVec
	VerificationsTotal  *prometheus.CounterVec
	LoginAttemptsTotal  *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EnrollmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdp_enrollments_total",
			Help: "Enrollment submissions by outcome",
		}, []string{"outcome"}),
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdp_verifications_total",
			Help: "Membership verification lookups by method and outcome",
		}, []string{"method", "outcome"}),
		LoginAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdp_admin_login_attempts_total",
			Help: "Admin login attempts by outcome",
		}, []string{"outcome"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sdp_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
}

// NewNop returns metrics registered on a throwaway registry, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncrementEnrollment(outcome string) {
	m.EnrollmentsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementVerification(method, outcome string) {
	m.VerificationsTotal.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) IncrementLoginAttempt(outcome string) {
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
