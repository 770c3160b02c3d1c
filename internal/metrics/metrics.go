package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	paymentInitiationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_initiations_total",
			Help: "Payment initiations by outcome",
		},
		[]string{"outcome"},
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phonepe_request_duration_seconds",
			Help:    "PhonePe pay API latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"outcome"},
	)

	reconciliationRequiredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_reconciliation_required_total",
			Help: "Payments that need manual reconciliation",
		},
		[]string{"reason"},
	)

	paymentStatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_updates_total",
			Help: "Payment status transitions applied",
		},
		[]string{"status"},
	)

	emailDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_deliveries_total",
			Help: "Outbound emails by provider and result",
		},
		[]string{"provider", "result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(paymentInitiationsTotal)
	prometheus.MustRegister(gatewayRequestDuration)
	prometheus.MustRegister(reconciliationRequiredTotal)
	prometheus.MustRegister(paymentStatusUpdatesTotal)
	prometheus.MustRegister(emailDeliveriesTotal)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, endpoint, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

// RecordPaymentInitiation counts an initiation outcome.
func RecordPaymentInitiation(outcome string) {
	paymentInitiationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveGatewayRequest records the latency of one gateway call.
func ObserveGatewayRequest(outcome string, seconds float64) {
	gatewayRequestDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordReconciliationRequired counts a gateway/store inconsistency.
func RecordReconciliationRequired(reason string) {
	reconciliationRequiredTotal.WithLabelValues(reason).Inc()
}

// RecordStatusUpdate counts an applied status transition.
func RecordStatusUpdate(status string) {
	paymentStatusUpdatesTotal.WithLabelValues(status).Inc()
}

// RecordEmailDelivery counts one delivery attempt.
func RecordEmailDelivery(provider, result string) {
	emailDeliveriesTotal.WithLabelValues(provider, result).Inc()
}
