// Package metrics defines and registers the custom Prometheus metrics for
// the EllaQuest platform API. It is the single source of truth for metric
// names, labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ellaquest"

// RegistrationsTotal counts created accounts.
// Labels:
//   - role: the assigned role ("student", "instructor", ...)
//   - path: "self" for /register, "admin" for /create-account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role and creation path.",
	},
	[]string{"role", "path"},
)

// LoginsTotal counts login attempts.
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

// TokenRejectionsTotal counts bearer tokens rejected by the auth
// middleware.
// Label:
//   - reason: "missing", "expired", or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by rejection reason.",
	},
	[]string{"reason"},
)

// RoleDenialsTotal counts requests that authenticated successfully but
// were denied by the role gate.
// Labels:
//   - route: the registered route path
//   - role: the denied identity's role
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of role-gate denials, by route and role.",
	},
	[]string{"route", "role"},
)
