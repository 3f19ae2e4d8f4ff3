// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus counters for the event backbone.
// Registration uses the default registry; exposition is the embedding
// application's concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dayflow_events_published_total",
		Help: "Total number of events published on the dispatcher by event type",
	}, []string{"type"})

	ListenerFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dayflow_listener_failures_total",
		Help: "Total number of listener panics recovered during publish by event type",
	}, []string{"type"})

	StoreAppendFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dayflow_store_append_failures_total",
		Help: "Total number of failed event store appends by event type",
	}, []string{"type"})
)

// IncPublished records a published event for the given type.
func IncPublished(eventType string) {
	if eventType == "" {
		eventType = "unknown"
	}
	EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

// IncListenerFailure records a recovered listener panic.
func IncListenerFailure(eventType string) {
	if eventType == "" {
		eventType = "unknown"
	}
	ListenerFailuresTotal.WithLabelValues(eventType).Inc()
}

// IncStoreAppendFailure records a failed event store append.
func IncStoreAppendFailure(eventType string) {
	if eventType == "" {
		eventType = "unknown"
	}
	StoreAppendFailuresTotal.WithLabelValues(eventType).Inc()
}
