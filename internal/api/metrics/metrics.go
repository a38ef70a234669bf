// Package metrics defines and registers the custom Prometheus metrics of the
// Stratford API. HTTP request metrics come from echoprometheus; these cover
// the auth and catalogue lifecycle.
//
// All metrics register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stratford"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts access tokens minted.
// Label:
//   - flow: "register" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued, by flow.",
	},
	[]string{"flow"},
)

// LoginFailuresTotal counts rejected login attempts.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of login attempts rejected for bad credentials.",
	},
)

// AuthRejectionsTotal counts requests refused by the auth guards.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_subject",
//     "unauthenticated", "forbidden_role", "no_venue"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization guards.",
	},
	[]string{"reason"},
)

// RateLimitedTotal counts requests refused by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the per-IP rate limiter.",
	},
)

// ── Catalogue metrics ─────────────────────────────────────────────────────────

// VenuesCreatedTotal counts newly registered venues.
var VenuesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "venues_created_total",
		Help:      "Total number of venues created.",
	},
)

// EventsCreatedTotal counts newly scheduled events.
// Label:
//   - category: the event category (e.g. "LIVE_MUSIC")
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created, by category.",
	},
	[]string{"category"},
)
