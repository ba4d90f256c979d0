// Package metrics defines and registers all custom Prometheus metrics for the
// invoicing dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invoicing"

// InvoiceMutationsTotal counts create/update/delete invocations by outcome.
// Labels:
//   - operation: "create", "update" or "delete"
//   - result: "success", "validation_error" or "database_error"
var InvoiceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoice_mutations_total",
		Help:      "Total number of invoice mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ViewCacheTotal counts listing view cache lookups.
// Label:
//   - result: "hit" or "miss"
var ViewCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_cache_total",
		Help:      "Total number of listing view cache lookups, by result.",
	},
	[]string{"result"},
)
