package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeMalformed     = "malformed"
	OutcomeNotFound      = "not_found"
	OutcomeTooLarge      = "too_large"
	OutcomeInternalError = "error"
)

var (
	// Queries counts the queries performed, by outcome.
	Queries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insight",
			Name:      "queries_total",
			Help:      "Total number of queries performed, by outcome",
		},
		[]string{"outcome"},
	)

	// QueryDuration observes the time spent performing queries.
	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "insight",
			Name:      "query_duration_seconds",
			Help:      "Time spent performing queries",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ResultRows observes the number of rows returned by successful queries.
	ResultRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "insight",
			Name:      "query_result_rows",
			Help:      "Number of rows returned by successful queries",
			Buckets:   []float64{0, 1, 10, 100, 1000, 5000},
		},
	)

	// Datasets is the number of loaded datasets, by kind.
	Datasets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "insight",
			Name:      "datasets",
			Help:      "Number of loaded datasets, by kind",
		},
		[]string{"kind"},
	)

	// IngestedRows counts the rows loaded into datasets, by kind.
	IngestedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insight",
			Name:      "ingested_rows_total",
			Help:      "Total number of rows loaded into datasets, by kind",
		},
		[]string{"kind"},
	)
)

// ObserveQuery records the outcome of a query.
func ObserveQuery(outcome string, seconds float64) {
	Queries.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(seconds)
}
