// Package metrics defines the custom Prometheus metrics for the CRM console
// service. It is the single source of truth for metric names, labels, and
// help strings; echoprometheus covers generic HTTP metrics separately.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm_console"

// LoginsTotal counts login attempts by outcome ("ok" / "failed").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// NotificationsSentTotal counts notifications created, by delivery scope
// ("direct" / "broadcast").
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications created, by scope.",
	},
	[]string{"scope"},
)

// PushConnections tracks the number of live websocket subscribers.
var PushConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "push_connections",
		Help:      "Current number of live push-channel subscribers.",
	},
)

// CollectionsServedTotal counts full-collection list responses, by resource.
var CollectionsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collections_served_total",
		Help:      "Total number of full-collection list responses, by resource.",
	},
	[]string{"resource"},
)
