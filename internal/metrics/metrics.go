package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentormatch_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_bookings_total",
			Help: "Bookings created, by initial status",
		},
		[]string{"status"},
	)

	BookingClaimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mentormatch_booking_claim_conflicts_total",
			Help: "Claims that lost the race for an already booked slot",
		},
	)

	BookingCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_booking_cancellations_total",
			Help: "Booking cancellations, by the role of the caller",
		},
		[]string{"actor"},
	)

	PaymentOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_payment_outcomes_total",
			Help: "Deferred payment confirmations, by outcome",
		},
		[]string{"outcome"},
	)

	PaymentsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mentormatch_payments_in_flight",
			Help: "Scheduled payment confirmations that have not fired yet",
		},
	)

	ReviewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mentormatch_reviews_total",
			Help: "Reviews created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_emails_sent_total",
			Help: "Emails processed by the queue worker",
		},
		[]string{"status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mentormatch_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	SideChannelFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentormatch_side_channel_failures_total",
			Help: "Best-effort notification deliveries that failed",
		},
		[]string{"channel"},
	)
)

const (
	PaymentConfirmed = "confirmed"
	PaymentNoop      = "noop"
	PaymentError     = "error"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordClaimConflict() {
	BookingClaimConflictsTotal.Inc()
}

func RecordBookingCancellation(actor string) {
	BookingCancellationsTotal.WithLabelValues(actor).Inc()
}

func RecordPayment(outcome string) {
	PaymentOutcomesTotal.WithLabelValues(outcome).Inc()
}

func RecordReview() {
	ReviewsTotal.Inc()
}

func RecordEmail(status string) {
	EmailsSentTotal.WithLabelValues(status).Inc()
}

func RecordSideChannelFailure(channel string) {
	SideChannelFailuresTotal.WithLabelValues(channel).Inc()
}
