package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Catalog Prometheus metrics.
var (
	CatalogGames = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_games",
			Help:      "Number of games in the current catalog snapshot",
		},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Catalog document cache refreshes, fallbacks and misses",
		},
		[]string{"result"},
	)
)

// Query Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of catalog queries",
		},
		[]string{"kind"},
	)

	QueryResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_results",
			Help:      "Number of games returned per query",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Catalog query duration in seconds",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
	)
)

var registerOnce sync.Once

// Register registers catalog and query metrics. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CatalogGames)
		prometheus.MustRegister(CatalogReloadsTotal)
		prometheus.MustRegister(CatalogCacheTotal)
		prometheus.MustRegister(QueriesTotal)
		prometheus.MustRegister(QueryResults)
		prometheus.MustRegister(QueryDuration)
	})
}

// Recorder implements the query and catalog recorder contracts on the package metrics.
type Recorder struct{}

// ObserveQuery records one finished query.
func (Recorder) ObserveQuery(kind string, results int, seconds float64) {
	QueriesTotal.WithLabelValues(kind).Inc()
	QueryResults.Observe(float64(results))
	QueryDuration.Observe(seconds)
}

// ObserveReload records one reload attempt and, on success, the snapshot size.
func (Recorder) ObserveReload(games int, err error) {
	if err != nil {
		CatalogReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogReloadsTotal.WithLabelValues("ok").Inc()
	CatalogGames.Set(float64(games))
}
