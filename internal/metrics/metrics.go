package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesbadge_cache_events_total",
			Help: "Purchase-count cache events by kind",
		},
		[]string{"event"},
	)

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesbadge_upstream_requests_total",
			Help: "Store API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	countRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesbadge_count_requests_total",
			Help: "Recent-purchase count requests by outcome",
		},
		[]string{"outcome"},
	)
)

var initOnce sync.Once

var registered bool

// Init registers the collectors. Must be called once at startup; recording
// before Init is a no-op so unit tests don't need the registry.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(cacheEvents, upstreamRequests, countRequests)
		registered = true
	})
}

// RecordCacheEvent counts a cache hit, miss or expiry.
func RecordCacheEvent(event string) {
	if !registered {
		return
	}
	cacheEvents.WithLabelValues(event).Inc()
}

// RecordUpstreamRequest counts one store API call outcome.
func RecordUpstreamRequest(endpoint, outcome string) {
	if !registered {
		return
	}
	upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// RecordCountRequest counts one /recent-purchases request outcome.
func RecordCountRequest(outcome string) {
	if !registered {
		return
	}
	countRequests.WithLabelValues(outcome).Inc()
}
