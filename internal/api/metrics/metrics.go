// Package metrics defines and registers all custom Prometheus metrics for
// the booking platform. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init time via promauto; the /metrics endpoint is served by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// BookingsCreatedTotal counts bookings that were successfully persisted.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings successfully created.",
	},
)

// BookingsFailedTotal counts failed booking-creation attempts.
// Label:
//   - reason: "service_not_found", "user_not_found", "schedule_in_past",
//     "invalid_phone", "email_config" or "internal"
var BookingsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_failed_total",
		Help:      "Total number of booking-creation attempts that failed.",
	},
	[]string{"reason"},
)

// NotificationsTotal counts confirmation dispatch outcomes.
// Label:
//   - result: "sent", "failed", "skipped" (missing credentials in relaxed
//     mode) or "deduped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of booking confirmation dispatch attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
