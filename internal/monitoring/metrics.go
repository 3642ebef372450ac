package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes recorded by TrackBooking.
const (
	BookingCreated  = "created"
	BookingOverlap  = "overlap"
	BookingRejected = "rejected"
	BookingFailed   = "failed"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	showsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shows_booked_total",
			Help: "Show booking attempts by outcome",
		},
		[]string{"result"},
	)
)

// TrackRequest records one served request.
func TrackRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackBooking records the outcome of a show booking attempt.
func TrackBooking(result string) {
	showsBooked.WithLabelValues(result).Inc()
}
