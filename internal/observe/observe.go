// Package observe counts, times and logs the operations of the public
// improvdex packages. A nil *Observer is valid and records nothing.
package observe

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "improvdex"

// Config selects where an Observer reports.
type Config struct {
	// Subsystem prefixes the metric names, e.g. "lib" or "sdk".
	Subsystem string
	// Buckets for the duration histogram; nil uses prometheus.DefBuckets.
	Buckets []float64
	// Status maps an operation error to the "status" label; nil uses Status.
	Status func(error) string

	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// Observer records operation outcomes as metrics and log lines.
type Observer struct {
	logger     *slog.Logger
	status     func(error) string
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New creates an observer. Metrics are registered only when cfg.Registerer is set.
func New(cfg Config) (*Observer, error) {
	o := &Observer{logger: cfg.Logger, status: cfg.Status}
	if o.status == nil {
		o.status = Status
	}
	if cfg.Registerer == nil {
		return o, nil
	}

	buckets := cfg.Buckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	o.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: cfg.Subsystem,
		Name:      "operations_total",
		Help:      "Total operations by type and status.",
	}, []string{"operation", "status"})
	o.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: cfg.Subsystem,
		Name:      "operation_duration_seconds",
		Help:      "Operation duration in seconds.",
		Buckets:   buckets,
	}, []string{"operation"})

	if err := RegisterOrReuse(cfg.Registerer, &o.operations); err != nil {
		return nil, err
	}
	if err := RegisterOrReuse(cfg.Registerer, &o.duration); err != nil {
		return nil, err
	}
	return o, nil
}

// Observe counts op, records its duration since start and logs the outcome.
// attrs are extra slog key/value pairs for the success line.
func (o *Observer) Observe(op string, start time.Time, err error, attrs ...any) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.operations != nil {
		o.operations.WithLabelValues(op, o.status(err)).Inc()
		o.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	if err != nil {
		o.logger.Warn("operation failed", "op", op, "duration", dur, "error", err)
		return
	}
	o.logger.Debug("operation completed", append([]any{"op", op, "duration", dur}, attrs...)...)
}

// Count records op without a duration, for events that are not timed by the caller.
func (o *Observer) Count(op string, err error) {
	if o == nil || o.operations == nil {
		return
	}
	o.operations.WithLabelValues(op, o.status(err)).Inc()
}

// Logger returns the configured logger, or nil.
func (o *Observer) Logger() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.logger
}

// Status is the default status label: "ok" or "error".
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RegisterOrReuse registers a collector or swaps in the one already registered
// under the same descriptor.
func RegisterOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("improvdex: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("improvdex: register metric: %w", err)
	}
	return nil
}
