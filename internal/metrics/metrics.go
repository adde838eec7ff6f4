package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exploreease_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "exploreease_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exploreease_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exploreease_payments_total",
			Help: "Total number of payment operations",
		},
		[]string{"operation", "outcome"},
	)

	PaymentRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exploreease_payment_retries_total",
			Help: "Total number of payment creation retries under lock contention",
		},
	)

	RefundRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exploreease_refund_requests_total",
			Help: "Total number of refund requests",
		},
		[]string{"tier"},
	)

	SlotsAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "exploreease_package_slots_available",
			Help: "Available slots per package",
		},
		[]string{"package_id"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordPayment(operation, outcome string) {
	PaymentsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordPaymentRetry() {
	PaymentRetriesTotal.Inc()
}

func RecordRefundRequest(tier string) {
	RefundRequestsTotal.WithLabelValues(tier).Inc()
}

func SetSlotsAvailable(packageID, slots int) {
	SlotsAvailable.WithLabelValues(strconv.Itoa(packageID)).Set(float64(slots))
}
