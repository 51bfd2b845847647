// Package metrics defines and registers all custom Prometheus metrics for the
// proposal intake API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "intake"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/users/:email"), never the raw path
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from routing to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthorizationDeniedTotal counts requests rejected by the admin role check.
// Label:
//   - route: the matched route pattern
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests rejected because the requester is not an admin.",
	},
	[]string{"route"},
)

// ── Proposal metrics ──────────────────────────────────────────────────────────

// ProposalsCreatedTotal counts stored proposals.
// Label:
//   - attachment: "true" when a file was uploaded with the proposal, else "false"
var ProposalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proposals_created_total",
		Help:      "Total number of proposals created, by attachment presence.",
	},
	[]string{"attachment"},
)

// UploadedBytesTotal sums the size of every file written to the upload directory.
var UploadedBytesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploaded_bytes_total",
		Help:      "Total number of bytes written to the upload directory.",
	},
)

// ── Testimonial metrics ───────────────────────────────────────────────────────

// TestimonialActionsTotal counts testimonial submissions and moderation actions.
// Label:
//   - action: "created", "approved" or "deleted"
var TestimonialActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "testimonial_actions_total",
		Help:      "Total number of testimonial submissions and moderation actions.",
	},
	[]string{"action"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts proposal notification outcomes.
// Label:
//   - result: "published", "failed" or "dropped" (queue full)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of proposal notifications, labelled by outcome.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
