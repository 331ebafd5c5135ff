// Package metrics holds the Prometheus collectors for legacy redirects.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedirectsTotal counts issued redirects by the rule that matched.
	RedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legacy_redirects_total",
			Help: "Legacy URLs redirected, by matching rule",
		},
		[]string{"rule", "status"},
	)

	// ResolveMisses counts unmatched paths handed to the SPA fallback.
	ResolveMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "legacy_resolve_misses_total",
			Help: "Paths no legacy rule recognised",
		},
	)

	// EventsDropped counts analytics events dropped because the buffer was full.
	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "legacy_redirect_events_dropped_total",
			Help: "Redirect analytics events dropped on a full buffer",
		},
	)

	// RecorderErrors counts analytics sink failures by sink.
	RecorderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legacy_recorder_errors_total",
			Help: "Redirect analytics write failures, by sink",
		},
		[]string{"sink"},
	)
)
