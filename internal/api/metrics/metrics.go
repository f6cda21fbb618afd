// Package metrics defines and registers the custom Prometheus metrics
// for the VIBANK account system. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vibank"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts credential login attempts.
// Label:
//   - result: "success", "invalid", or "error". Unknown email and wrong
//     password both count as "invalid" — the split is visible only in
//     server logs, never in metrics exposed per email.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AgentLookupsTotal counts agent login-by-name lookups.
// Label:
//   - result: "found", "not_found", or "error"
var AgentLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agent_lookups_total",
		Help:      "Total number of agent name lookups, by result.",
	},
	[]string{"result"},
)
