package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics records upstream call outcomes, fixture fallbacks and
// refresh-poll activity.
type DashboardMetrics struct {
	upstreamRequests *prometheus.CounterVec
	fallbacks        *prometheus.CounterVec
	pollDuration     *prometheus.HistogramVec
	pollSuccess      *prometheus.CounterVec
	pollFailure      *prometheus.CounterVec
}

// NewDashboardMetrics registers the dashboard metrics on the provided registerer.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	upstreamRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Upstream TMS API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fixture_fallbacks_total",
		Help: "Page loads served from fixture data after a live failure.",
	}, []string{"page"})
	pollDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "poll_duration_seconds",
		Help:    "Duration of dashboard refresh polls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"page"})
	pollSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_success",
		Help: "Successful dashboard refresh polls.",
	}, []string{"page"})
	pollFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_failure",
		Help: "Failed dashboard refresh polls.",
	}, []string{"page"})
	reg.MustRegister(upstreamRequests, fallbacks, pollDuration, pollSuccess, pollFailure)
	return &DashboardMetrics{
		upstreamRequests: upstreamRequests,
		fallbacks:        fallbacks,
		pollDuration:     pollDuration,
		pollSuccess:      pollSuccess,
		pollFailure:      pollFailure,
	}
}

// ObserveUpstream counts one upstream request with its outcome label.
func (d *DashboardMetrics) ObserveUpstream(endpoint, outcome string) {
	if d == nil || d.upstreamRequests == nil {
		return
	}
	d.upstreamRequests.WithLabelValues(normalizeLabel(endpoint), normalizeLabel(outcome)).Inc()
}

// IncFallback counts one fixture fallback for the named page.
func (d *DashboardMetrics) IncFallback(page string) {
	if d == nil || d.fallbacks == nil {
		return
	}
	d.fallbacks.WithLabelValues(normalizeLabel(page)).Inc()
}

// ObservePoll records the duration for the named page's refresh poll.
func (d *DashboardMetrics) ObservePoll(page string, duration time.Duration) {
	if d == nil || d.pollDuration == nil {
		return
	}
	d.pollDuration.WithLabelValues(normalizeLabel(page)).Observe(duration.Seconds())
}

// IncPollSuccess increments the success counter for the named page.
func (d *DashboardMetrics) IncPollSuccess(page string) {
	if d == nil || d.pollSuccess == nil {
		return
	}
	d.pollSuccess.WithLabelValues(normalizeLabel(page)).Inc()
}

// IncPollFailure increments the failure counter for the named page.
func (d *DashboardMetrics) IncPollFailure(page string) {
	if d == nil || d.pollFailure == nil {
		return
	}
	d.pollFailure.WithLabelValues(normalizeLabel(page)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
