// Package metrics defines and registers the portal's Prometheus metrics. It is
// the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry on import (promauto) and
// exposed by the gateway at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Slice metrics ─────────────────────────────────────────────────────────────

// SliceOperationsTotal counts settled slice operations.
// Labels:
//   - slice: the slice name (e.g. "doctor_slots")
//   - operation: the operation (e.g. "fetch", "create", "delete")
//   - outcome: "ok", "failed" or "needs_profile_setup"
var SliceOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slice_operations_total",
		Help:      "Total number of slice operations, by slice, operation and outcome.",
	},
	[]string{"slice", "operation", "outcome"},
)

// SliceOperationDuration measures the backend round trip of a slice operation.
var SliceOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "slice_operation_duration_seconds",
		Help:      "Duration of slice operations from dispatch to reduction.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"slice", "operation"},
)

// SliceInflight tracks operations currently pending per slice.
var SliceInflight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "slice_inflight_operations",
		Help:      "Number of slice operations awaiting a backend response.",
	},
	[]string{"slice"},
)

// ── Background and chat metrics ───────────────────────────────────────────────

// KeepAlivePingsTotal counts keep-alive pings.
// Label:
//   - result: "alive", "unexpected" (answered without status alive) or "error"
var KeepAlivePingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keepalive_pings_total",
		Help:      "Total number of keep-alive pings, by result.",
	},
	[]string{"result"},
)

// ChatMessagesTotal counts chat sends.
// Label:
//   - result: "ok" or "fallback"
var ChatMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat messages sent, by result.",
	},
	[]string{"result"},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard verdicts.
// Labels:
//   - guard: "private", "public" or "open"
//   - decision: "render" or the redirect target
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by guard and decision.",
	},
	[]string{"guard", "decision"},
)
