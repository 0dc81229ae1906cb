// Package debounce delays a call until a burst of triggers has settled.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once after interval has passed with no new Trigger.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	gen      uint64
	stopped  bool
	inflight sync.WaitGroup
}

// New creates a trailing-edge debouncer.
func New(interval time.Duration, fn func()) *Debouncer {
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger (re)starts the quiet interval. Calls after Stop are ignored.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// Stop cancels any pending call, disables further triggers and waits
// for a call that already started. It must not be called from fn.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.inflight.Wait()
}

// fire runs fn unless a newer Trigger or Stop superseded this timer.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.inflight.Add(1)
	d.mu.Unlock()

	defer d.inflight.Done()
	d.fn()
}
