package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache-aside lookups served from Redis, by entity.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingopal_cache_hits_total",
		Help: "Total number of cache hits by entity",
	}, []string{"entity"})

	// CacheMisses counts cache-aside lookups that fell through to the database.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingopal_cache_misses_total",
		Help: "Total number of cache misses by entity",
	}, []string{"entity"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lingopal_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ChatProviderCalls counts outbound chat provider calls by operation and result.
	ChatProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingopal_chat_provider_calls_total",
		Help: "Outbound chat provider calls by operation and result",
	}, []string{"operation", "result"})
)

// ObserveQuery records the latency of a database query since start.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
