package watcher

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiet period after the last event before a
// batch is delivered.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces bursts of paths into one sorted batch.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
	stopped  bool
}

// NewDebouncer creates a debouncer that calls callback once no path has been
// added for window. A non-positive window uses DefaultDebounceWindow.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	paths := d.drain()
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush delivers the pending batch synchronously, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		// The timer already fired and owns the batch.
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fire()
}

// Stop discards pending paths and ignores later additions.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

func (d *Debouncer) drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timer = nil
	if len(d.pending) == 0 {
		return nil
	}
	paths := slices.Sorted(maps.Keys(d.pending))
	clear(d.pending)
	return paths
}
