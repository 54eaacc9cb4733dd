package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheRefreshes counts scheduled booking cache refreshes by task and outcome.
	CacheRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hoteldesk",
			Name:      "cache_refreshes_total",
			Help:      "The total number of scheduled booking cache refreshes",
		},
		[]string{"task", "outcome"},
	)

	// StatusTransitions counts applied payment status transitions.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hoteldesk",
			Name:      "status_transitions_total",
			Help:      "The total number of applied payment status transitions",
		},
		[]string{"from", "to"},
	)

	// NotificationsSent counts booking confirmation sends by outcome.
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hoteldesk",
			Name:      "notifications_total",
			Help:      "The total number of booking confirmation sends",
		},
		[]string{"outcome"},
	)

	// EventsProcessed counts internal console events handled by the router.
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hoteldesk",
			Name:      "events_processed_total",
			Help:      "The total number of processed internal events",
		},
		[]string{"topic", "handler"},
	)

	// EventsProcessingFailed counts internal event handler failures.
	EventsProcessingFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hoteldesk",
			Name:      "events_processing_failed_total",
			Help:      "The total number of internal event handler failures",
		},
		[]string{"topic", "handler"},
	)

	// NotificationDuration tracks the render-and-dispatch time per booking.
	NotificationDuration = promauto.NewSummary(
		prometheus.SummaryOpts{
			Namespace:  "hoteldesk",
			Name:       "notification_duration_seconds",
			Help:       "The time spent rendering and dispatching one booking confirmation",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)
)
