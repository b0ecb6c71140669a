package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid-fire triggers into one callback after a quiet
// period, the way the page folded resize storms into a single re-render.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	fn    func()
	timer *time.Timer
}

func New(quiet time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		quiet: quiet,
		fn:    fn,
	}
}

// Trigger schedules the callback after the quiet period, resetting the
// clock if one is already pending.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
