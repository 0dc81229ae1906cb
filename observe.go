package improvdex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/improvdex/internal/observe"
)

// Catalog lookups are in-memory scans, so latency buckets start at 10µs.
var libBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// observer records catalog operations and the size of the active snapshot.
type observer struct {
	ops   *observe.Observer
	games prometheus.Gauge
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	ops, err := observe.New(observe.Config{
		Subsystem:  "lib",
		Buckets:    libBuckets,
		Logger:     logger,
		Registerer: reg,
	})
	if err != nil {
		return nil, err
	}
	o := &observer{ops: ops}
	if reg == nil {
		return o, nil
	}

	o.games = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "improvdex",
		Subsystem: "lib",
		Name:      "catalog_games",
		Help:      "Number of games in the active catalog snapshot.",
	})
	if err := observe.RegisterOrReuse(reg, &o.games); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *observer) observe(op string, start time.Time, results int, err error) {
	o.ops.Observe(op, start, err, "results", results)
}

// ObserveReload records a catalog (re)load, including those triggered by the file watcher.
func (o *observer) ObserveReload(games int, err error) {
	o.ops.Count("reload", err)
	if err == nil && o.games != nil {
		o.games.Set(float64(games))
	}

	logger := o.ops.Logger()
	if logger == nil {
		return
	}
	if err != nil {
		logger.Warn("catalog reload failed, keeping previous snapshot", "error", err)
	} else {
		logger.Info("catalog loaded", "games", games)
	}
}
