package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventclima_queries_total",
			Help: "Historical outlook queries by outcome",
		},
		[]string{"outcome"},
	)

	ArchiveCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventclima_archive_calls_total",
			Help: "Upstream archive API calls",
		},
		[]string{"provider", "status"},
	)

	ArchiveLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventclima_archive_latency_seconds",
			Help:    "Archive API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	HistoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventclima_history_entries",
			Help: "Entries currently in the in-memory history log",
		},
	)
)
