package daemon

import (
	"sync"
	"time"
)

// DefaultIdleTimeout is how long the daemon waits for a request before it
// exits on its own.
const DefaultIdleTimeout = 30 * time.Minute

// Lifecycle tracks daemon activity and decides when to shut down.
// A non-positive timeout disables the idle shutdown.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	startTime    time.Time
	lastActivity time.Time
	timeout      time.Duration
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle creates a lifecycle whose idle clock starts now.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		startTime:    now,
		lastActivity: now,
		timeout:      timeout,
		shutdownChan: make(chan struct{}),
	}
	if timeout > 0 {
		l.timer = time.AfterFunc(timeout, l.triggerShutdown)
	}
	return l
}

// Touch records activity and restarts the idle clock.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastActivity = time.Now()
	if l.timer != nil {
		l.timer.Reset(l.timeout)
	}
}

// IdleTimeout returns the configured timeout; zero or less means disabled.
func (l *Lifecycle) IdleTimeout() time.Duration {
	return l.timeout
}

// IdleRemaining returns the time left before the idle shutdown, or zero when
// it is disabled.
func (l *Lifecycle) IdleRemaining() time.Duration {
	if l.timeout <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.timeout-time.Since(l.lastActivity), 0)
}

// Uptime returns how long the daemon has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// LastActivity returns the time of the last request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// Done returns a channel that is closed once shutdown is triggered.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdownChan
}

func (l *Lifecycle) triggerShutdown() {
	l.shutdownOnce.Do(func() {
		close(l.shutdownChan)
	})
}

// Shutdown stops the idle clock and triggers shutdown. It is idempotent.
func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()
	l.triggerShutdown()
}
