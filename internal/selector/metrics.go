package selector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankingsTotal tracks completed top-K rankings.
	RankingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_rankings_total",
		Help: "Total number of completed symbol rankings",
	})

	// RankingDurationSeconds tracks the batched ticker fetch latency.
	RankingDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spreadmon_ranking_duration_seconds",
		Help:    "Duration of the batched 24h ticker fetch backing a ranking",
		Buckets: prometheus.DefBuckets,
	})
)
