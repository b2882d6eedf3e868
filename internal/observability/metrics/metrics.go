package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking funnel.
type BookingMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	webhookLatency     prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brakes",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by webhook outcome",
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brakes",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Step-one validation failures by field",
		}, []string{"field"}),
		webhookLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brakes",
			Subsystem: "booking",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of the lead webhook POST",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.validationFailures, m.webhookLatency)
	return m
}

// ObserveSubmission records one settled submission. Outcome is one of
// "delivered", "failed" or "degraded" (2xx but unusable body).
func (m *BookingMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveValidationFailure counts one failing field on a step-one
// attempt.
func (m *BookingMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// ObserveWebhookLatency records how long the webhook POST took.
func (m *BookingMetrics) ObserveWebhookLatency(seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.Observe(seconds)
}
