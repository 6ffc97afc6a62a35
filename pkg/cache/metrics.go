package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHitsTotal tracks metadata cache hits.
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_cache_hits_total",
		Help: "Total number of exchange metadata cache hits",
	})

	// CacheMissesTotal tracks metadata cache misses.
	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_cache_misses_total",
		Help: "Total number of exchange metadata cache misses",
	})

	// CacheSetsTotal tracks metadata cache writes.
	CacheSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_cache_sets_total",
		Help: "Total number of exchange metadata cache writes",
	})
)
