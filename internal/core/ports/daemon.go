package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks

// DaemonStatus represents the current state of the daemon.
type DaemonStatus struct {
	Running       bool
	PID           int
	Uptime        time.Duration
	LastActivity  time.Time
	IdleRemaining time.Duration
	ProjectDir    string
	Formulas      int
}

// DaemonClient defines the interface for communicating with the daemon.
type DaemonClient interface {
	// Status returns the current daemon status.
	Status(ctx context.Context) (*DaemonStatus, error)

	// Refresh drops the daemon's vendor index.
	Refresh(ctx context.Context) (bool, error)

	// Shutdown requests a graceful daemon shutdown.
	Shutdown(ctx context.Context) error

	// Close releases client resources.
	Close() error
}

// DaemonConnector opens clients to a daemon listening on a socket.
type DaemonConnector interface {
	// Connect returns a client to the daemon at socketPath, or
	// domain.ErrDaemonUnavailable when nothing answers there.
	Connect(ctx context.Context, socketPath string) (DaemonClient, error)
}
