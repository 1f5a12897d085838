package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus observability primitives for the backend.
type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	sessionsActive     prometheus.Gauge
	sessionsPruned     prometheus.Counter
	demoRedemptions    *prometheus.CounterVec
	onboardingOutcomes *prometheus.CounterVec
	advisorThrottled   prometheus.Counter
}

// NewMetrics registers and returns the application metric set.
func NewMetrics() *Metrics {
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tradiehq_http_requests_total",
		Help: "Counts HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tradiehq_http_duration_seconds",
		Help:    "HTTP request latency per method/route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	sessionsActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tradiehq_sessions_active",
		Help: "Number of live entries in the session store.",
	})

	sessionsPruned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tradiehq_sessions_pruned_total",
		Help: "Expired sessions removed by the pruner.",
	})

	demoRedemptions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tradiehq_demo_redemptions_total",
		Help: "Demo code redemption attempts by outcome.",
	}, []string{"outcome"})

	onboardingOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tradiehq_onboarding_total",
		Help: "Onboarding submissions by outcome.",
	}, []string{"outcome"})

	advisorThrottled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tradiehq_advisor_throttled_total",
		Help: "Advisor chat requests rejected by the rate limiter.",
	})

	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		sessionsActive,
		sessionsPruned,
		demoRedemptions,
		onboardingOutcomes,
		advisorThrottled,
	)

	return &Metrics{
		httpRequests:       httpRequests,
		httpDuration:       httpDuration,
		sessionsActive:     sessionsActive,
		sessionsPruned:     sessionsPruned,
		demoRedemptions:    demoRedemptions,
		onboardingOutcomes: onboardingOutcomes,
		advisorThrottled:   advisorThrottled,
	}
}

// ObserveHTTPRequest records one request and its latency.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(sanitizeLabel(method), sanitizeLabel(route), status).Inc()
	m.httpDuration.WithLabelValues(sanitizeLabel(method), sanitizeLabel(route)).Observe(duration.Seconds())
}

// SetActiveSessions updates the session store gauge.
func (m *Metrics) SetActiveSessions(value float64) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(value)
}

// AddPrunedSessions counts sessions removed by the pruner.
func (m *Metrics) AddPrunedSessions(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.sessionsPruned.Add(float64(count))
}

// ObserveDemoRedemption records a redemption attempt outcome.
func (m *Metrics) ObserveDemoRedemption(outcome string) {
	if m == nil {
		return
	}
	m.demoRedemptions.WithLabelValues(sanitizeLabel(outcome)).Inc()
}

// ObserveOnboarding records an onboarding submission outcome.
func (m *Metrics) ObserveOnboarding(outcome string) {
	if m == nil {
		return
	}
	m.onboardingOutcomes.WithLabelValues(sanitizeLabel(outcome)).Inc()
}

// ObserveAdvisorThrottled counts a rate-limited advisor call.
func (m *Metrics) ObserveAdvisorThrottled() {
	if m == nil {
		return
	}
	m.advisorThrottled.Inc()
}

func sanitizeLabel(val string) string {
	if val == "" {
		return "unknown"
	}
	return val
}
