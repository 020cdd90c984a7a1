// Package metrics defines and registers all custom Prometheus metrics for
// the storefront service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// SearchQueriesTotal counts live query recomputations that produced a
// result panel (trimmed length > 1).
var SearchQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total number of live search recomputations.",
	},
)

// SearchCommitsTotal counts finalized search interactions.
// Label:
//   - kind: "select" (Enter or result click) or "view_all"
var SearchCommitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_commits_total",
		Help:      "Total number of committed search interactions, by kind.",
	},
	[]string{"kind"},
)

// SessionOpsTotal counts session lifecycle operations.
// Labels:
//   - op: "login", "register", "logout"
//   - result: "ok" or "error"
var SessionOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_ops_total",
		Help:      "Total number of session operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ChatRepliesTotal counts simulated chat replies served.
var ChatRepliesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of simulated chat replies served.",
	},
)

// OrderCallsTotal counts pass-through calls to the remote order service.
// Labels:
//   - op: "create", "list", "get", "cancel", "pay", "pay_onchain", "tracking"
//   - result: "ok" or "error"
var OrderCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_calls_total",
		Help:      "Total number of remote order API calls, by operation and result.",
	},
	[]string{"op", "result"},
)
