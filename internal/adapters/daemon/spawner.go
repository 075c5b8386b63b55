package daemon

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	pollInterval    = 100 * time.Millisecond
	maxPollDuration = 5 * time.Second
)

// Spawner starts a detached daemon process running this executable.
type Spawner struct {
	executablePath string
}

// NewSpawner creates a spawner for the running executable.
func NewSpawner() (*Spawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return &Spawner{executablePath: exe}, nil
}

// Spawn starts "daemon serve" with args in its own session, logging next to
// the socket, and waits until it answers on socketPath. A daemon that already
// answers is left alone.
func (s *Spawner) Spawn(ctx context.Context, socketPath string, args ...string) error {
	if client, err := connect(ctx, socketPath); err == nil {
		return client.Close()
	}

	dir := filepath.Dir(socketPath)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create daemon directory"), "path", dir)
	}

	logPath := domain.DaemonLogPath(socketPath)
	//nolint:gosec // G304: the log path is derived from the socket path
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open daemon log"), "path", logPath)
	}

	cmdArgs := append([]string{"daemon", "serve", "--socket", socketPath}, args...)
	//nolint:gosec // G204: the executable is this binary
	cmd := exec.Command(s.executablePath, cmdArgs...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return zerr.Wrap(err, "failed to start daemon")
	}

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	return waitForDaemon(ctx, socketPath)
}

func waitForDaemon(ctx context.Context, socketPath string) error {
	ctx, cancel := context.WithTimeout(ctx, maxPollDuration)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if client, err := connect(ctx, socketPath); err == nil {
			return client.Close()
		}
		select {
		case <-ctx.Done():
			return zerr.With(zerr.Wrap(domain.ErrDaemonUnavailable, "daemon did not start in time"),
				"path", socketPath)
		case <-ticker.C:
		}
	}
}
