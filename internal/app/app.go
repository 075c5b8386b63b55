// Package app implements the application layer for saltbundle.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/saltbundle/internal/adapters/daemon"
	"go.trai.ch/saltbundle/internal/adapters/watcher"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DaemonSpawner starts a detached daemon process.
type DaemonSpawner interface {
	Spawn(ctx context.Context, socketPath string, args ...string) error
}

// DaemonOptions configures a daemon served in the foreground.
type DaemonOptions struct {
	// Socket is the Unix socket to listen on.
	Socket string
	// IdleTimeout stops the daemon after this long without a request.
	// Zero or less keeps it running.
	IdleTimeout time.Duration
	// Watch enables the file watcher driven auto-refresh.
	Watch bool
	// DebounceWindow overrides watcher.DefaultDebounceWindow.
	DebounceWindow time.Duration
}

// App represents the main application logic.
type App struct {
	engine    *fileserver.Engine
	host      *Host
	logger    ports.Logger
	connector ports.DaemonConnector
	spawner   DaemonSpawner
	mounter   ports.Mounter
	watchers  watcher.Factory
}

// New creates a new App instance.
func New(
	engine *fileserver.Engine,
	host *Host,
	logger ports.Logger,
	connector ports.DaemonConnector,
	spawner DaemonSpawner,
	mounter ports.Mounter,
	watchers watcher.Factory,
) *App {
	return &App{
		engine:    engine,
		host:      host,
		logger:    logger,
		connector: connector,
		spawner:   spawner,
		mounter:   mounter,
		watchers:  watchers,
	}
}

// Fileserver returns the in-process fileserver.
func (a *App) Fileserver() ports.Fileserver {
	return a.host
}

// ServeDaemon serves the fileserver on opts.Socket until ctx is done, the
// daemon is asked to shut down or it idles out.
func (a *App) ServeDaemon(ctx context.Context, opts domain.HostOptions, daemonOpts DaemonOptions) error {
	lifecycle := daemon.NewLifecycle(daemonOpts.IdleTimeout)
	server := daemon.NewServer(a.host, opts, lifecycle, a.logger, a.indexInfo)

	var refresher *autoRefresher
	if daemonOpts.Watch {
		w, err := a.watchers()
		if err != nil {
			return zerr.Wrap(err, "failed to start auto-refresh")
		}
		refresher = newAutoRefresher(a.engine, w, a.logger, daemonOpts.DebounceWindow)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return server.Serve(gctx, daemonOpts.Socket)
	})
	if refresher != nil {
		g.Go(func() error {
			return refresher.Run(gctx)
		})
		// Build the index now so the watcher starts before the first request.
		g.Go(func() error {
			a.host.DirList(gctx, opts)
			return nil
		})
	}
	return g.Wait()
}

func (a *App) indexInfo() (string, int) {
	idx := a.engine.Cached()
	if idx == nil {
		return "", 0
	}
	return idx.Project().ProjectDir(), idx.Len()
}

// StartDaemon spawns a background daemon on socketPath unless one already
// answers there. args are passed on to "daemon serve".
func (a *App) StartDaemon(ctx context.Context, socketPath string, args ...string) error {
	if err := a.spawner.Spawn(ctx, socketPath, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start daemon"), "socket", socketPath)
	}
	a.logger.Info("daemon running on " + socketPath)
	return nil
}

// DaemonStatus returns the status of the daemon on socketPath. A daemon that
// does not answer is reported as not running.
func (a *App) DaemonStatus(ctx context.Context, socketPath string) (*ports.DaemonStatus, error) {
	client, err := a.connector.Connect(ctx, socketPath)
	if err != nil {
		if errors.Is(err, domain.ErrDaemonUnavailable) {
			return &ports.DaemonStatus{Running: false}, nil
		}
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return client.Status(ctx)
}

// StopDaemon asks the daemon on socketPath to shut down. Stopping a daemon
// that is not running is not an error.
func (a *App) StopDaemon(ctx context.Context, socketPath string) error {
	client, err := a.connector.Connect(ctx, socketPath)
	if err != nil {
		if errors.Is(err, domain.ErrDaemonUnavailable) {
			a.logger.Info("daemon is not running")
			return nil
		}
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "failed to stop daemon")
	}
	a.logger.Info("daemon stopped")
	return nil
}

// RefreshDaemon drops the vendor index of the daemon on socketPath.
func (a *App) RefreshDaemon(ctx context.Context, socketPath string) error {
	client, err := a.connector.Connect(ctx, socketPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if _, err := client.Refresh(ctx); err != nil {
		return zerr.Wrap(err, "failed to refresh daemon")
	}
	a.logger.Info("daemon index refreshed")
	return nil
}

// Mount serves the namespace read-only at mountpoint until ctx is done.
func (a *App) Mount(ctx context.Context, opts domain.HostOptions, mountpoint string) error {
	return a.mounter.Mount(ctx, mountpoint, a.host, opts)
}
