package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gomoto"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "bookings_created_total", Help: "Bookings created by vehicle type"},
		[]string{"vehicle_type"},
	)
	BookingAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_amount",
		Help:      "Distribution of booking totals",
		Buckets:   prometheus.ExponentialBuckets(100, 2, 12),
	})
	BookingStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_status_updates_total", Help: "Booking status changes by new status"},
		[]string{"booking_status"},
	)
	BookingCancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "booking_cancellations_total", Help: "Total cancelled bookings",
	})
	RefundAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "refund_amount_total", Help: "Sum of refunds granted on cancellation",
	})
	FeedbackSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "feedback_submitted_total", Help: "Total feedback submissions",
	})

	ConsumerMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "consumer_messages_total", Help: "Booking events consumed by type and result"},
		[]string{"event_type", "result"},
	)
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_sent_total", Help: "Notification mails by event type and result"},
		[]string{"event_type", "result"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
