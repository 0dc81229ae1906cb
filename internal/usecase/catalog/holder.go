package catalog

import (
	"sync/atomic"

	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
)

// Holder publishes the current catalog snapshot to concurrent readers.
// Snapshots are immutable, so readers never need a lock.
type Holder struct {
	current atomic.Pointer[domcat.Catalog]
}

// NewHolder creates a holder, optionally seeded with a snapshot.
func NewHolder(initial *domcat.Catalog) *Holder {
	h := &Holder{}
	if initial != nil {
		h.current.Store(initial)
	}
	return h
}

// Current returns the active snapshot, nil before the first load.
func (h *Holder) Current() *domcat.Catalog { return h.current.Load() }

// Swap installs next and returns the previous snapshot.
func (h *Holder) Swap(next *domcat.Catalog) *domcat.Catalog { return h.current.Swap(next) }
