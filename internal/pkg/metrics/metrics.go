package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storezee"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and status code.",
		},
		[]string{"route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings committed by the creation workflow.",
		},
	)

	workflowFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_workflow_failures_total",
			Help:      "Booking workflow failures by kind.",
		},
		[]string{"kind"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "object_uploads_total",
			Help:      "Object store uploads by file kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Confirmation notifications by outcome.",
		},
		[]string{"outcome"},
	)

	workflowDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_workflow_duration_seconds",
			Help:      "Wall time of the booking creation workflow.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCreated,
			workflowFailures,
			uploads,
			notifications,
			workflowDuration,
		)
	})
}

func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncWorkflowFailure counts an aborted workflow. kind is one of validation, storage, persistence, timeout.
func IncWorkflowFailure(kind string) {
	workflowFailures.WithLabelValues(kind).Inc()
}

// IncUpload counts an object store operation. kind is document, photo or orphan; outcome is ok, failed, absorbed or deleted.
func IncUpload(kind, outcome string) {
	uploads.WithLabelValues(kind, outcome).Inc()
}

// IncNotification counts a notification outcome: queued, sent, retried, dead_lettered.
func IncNotification(outcome string) {
	notifications.WithLabelValues(outcome).Inc()
}

func ObserveWorkflowSeconds(seconds float64) {
	workflowDuration.Observe(seconds)
}
