package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
)

// Reloader loads snapshots and installs them into a Holder.
type Reloader struct {
	loader   Loader
	holder   *Holder
	recorder Recorder
	logger   *zap.Logger

	mu sync.Mutex
}

// NewReloader creates a Reloader. recorder can be nil.
func NewReloader(loader Loader, holder *Holder, recorder Recorder, logger *zap.Logger) *Reloader {
	return &Reloader{loader: loader, holder: holder, recorder: recorder, logger: logger}
}

// Reload loads a new snapshot and swaps it in.
// On failure the previous snapshot stays active and the error is returned.
func (r *Reloader) Reload(ctx context.Context) (*domcat.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.loader.Load(ctx)
	if err != nil {
		r.observe(0, err)
		r.logger.Error("Catalog reload failed, keeping previous snapshot",
			zap.Bool("has_previous", r.holder.Current() != nil),
			zap.Error(err),
		)
		return nil, fmt.Errorf("reload catalog: %w", err)
	}

	prev := r.holder.Swap(next)
	r.observe(next.Len(), nil)

	fields := []zap.Field{
		zap.Int("games", next.Len()),
		zap.String("version", shortVersion(next.Version())),
	}
	if prev != nil {
		fields = append(fields,
			zap.String("previous_version", shortVersion(prev.Version())),
			zap.Bool("changed", prev.Version() != next.Version()),
		)
	}
	r.logger.Info("Catalog loaded", fields...)
	return next, nil
}

func (r *Reloader) observe(games int, err error) {
	if r.recorder != nil {
		r.recorder.ObserveReload(games, err)
	}
}

func shortVersion(v string) string {
	if len(v) > 12 {
		return v[:12]
	}
	return v
}
