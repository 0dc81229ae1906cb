package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/debounce"
	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
)

// DefaultDebounce is the quiet interval before a change triggers a reload.
const DefaultDebounce = 250 * time.Millisecond

// reloader is the consumer interface for the watcher (ISP).
type reloader interface {
	Reload(ctx context.Context) (*domcat.Catalog, error)
}

// Watcher reloads the catalog when its file changes on disk.
// The parent directory is watched so editors that replace the file
// through a rename are still noticed.
type Watcher struct {
	path     string
	reloader reloader
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for path. A non-positive interval uses DefaultDebounce.
func NewWatcher(path string, r reloader, interval time.Duration, logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		reloader: r,
		interval: interval,
		logger:   logger,
	}
}

// Start begins watching. It is non-blocking and returns nil when already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.fsw = fsw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.run(ctx)

	w.logger.Info("Watching catalog file",
		zap.String("path", w.path),
		zap.Duration("debounce", w.interval),
	)
	return nil
}

// Stop stops watching and waits for the event loop and any running reload to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done, fsw := w.doneCh, w.fsw
	w.mu.Unlock()

	<-done
	if err := fsw.Close(); err != nil {
		w.logger.Warn("Error closing catalog watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Reload errors are logged by the reloader; the previous snapshot stays active.
	d := debounce.New(w.interval, func() { _, _ = w.reloader.Reload(ctx) })
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.logger.Debug("Catalog file changed",
					zap.String("path", ev.Name),
					zap.String("op", ev.Op.String()),
				)
				d.Trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Catalog watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
