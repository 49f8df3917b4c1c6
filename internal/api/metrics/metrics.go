// Package metrics defines and registers the custom Prometheus metrics of the
// records API. HTTP request metrics come from echoprometheus; this package
// only holds what the handlers know about the domain.
//
// All metrics register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "terceirizacao"

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts records stored by POST requests.
// Label:
//   - collection: the target collection (e.g. "funcionarios")
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by collection.",
	},
	[]string{"collection"},
)

// IdempotentReplaysTotal counts POSTs answered from the replay cache.
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests answered with a previously stored record.",
	},
	[]string{"collection"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardDuration measures how long the six dashboard counts take together.
// Label:
//   - outcome: "ok" or "error"
var DashboardDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_duration_seconds",
		Help:      "Duration of a full dashboard computation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Error metrics ─────────────────────────────────────────────────────────────

// RequestErrorsTotal counts error responses by kind.
// Label:
//   - kind: "validation", "not_found", "http" or "internal"
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of error responses, by error kind.",
	},
	[]string{"kind"},
)
