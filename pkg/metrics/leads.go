package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LeadMetrics records webhook forwarding outcomes per lead flow.
type LeadMetrics struct {
	duration    *prometheus.HistogramVec
	success     *prometheus.CounterVec
	failure     *prometheus.CounterVec
	csvFallback *prometheus.CounterVec
}

// NewLeadMetrics registers the lead submission metrics on the provided registerer.
func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	if reg == nil {
		return &LeadMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lead_forward_duration_seconds",
		Help:    "Duration of lead webhook forwards in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"flow"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_forward_success",
		Help: "Successful lead webhook forwards.",
	}, []string{"flow"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_forward_failure",
		Help: "Failed lead webhook forwards.",
	}, []string{"flow"})
	csvFallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_csv_fallback",
		Help: "Lead submissions recovered via CSV backup.",
	}, []string{"flow"})
	reg.MustRegister(duration, success, failure, csvFallback)
	return &LeadMetrics{
		duration:    duration,
		success:     success,
		failure:     failure,
		csvFallback: csvFallback,
	}
}

// ObserveDuration records the forward duration for the named flow.
func (m *LeadMetrics) ObserveDuration(flow string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(flow)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named flow.
func (m *LeadMetrics) IncSuccess(flow string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(flow)).Inc()
}

// IncFailure increments the failure counter for the named flow.
func (m *LeadMetrics) IncFailure(flow string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(flow)).Inc()
}

// IncCSVFallback increments the CSV fallback counter for the named flow.
func (m *LeadMetrics) IncCSVFallback(flow string) {
	if m == nil || m.csvFallback == nil {
		return
	}
	m.csvFallback.WithLabelValues(normalizeLabel(flow)).Inc()
}

func normalizeLabel(flow string) string {
	if flow == "" {
		return "unknown"
	}
	return flow
}
