package app

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/saltbundle/internal/adapters/watcher"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
)

// autoRefresher drops the engine's index when the vendor directory or the
// project configuration changes on disk. It starts watching once an index
// has been published and follows the project of every later index.
type autoRefresher struct {
	engine  *fileserver.Engine
	watcher ports.Watcher
	logger  ports.Logger
	window  time.Duration
	indexes chan *domain.VendorIndex

	mu         sync.RWMutex
	vendorPath string
	configPath string
}

func newAutoRefresher(
	engine *fileserver.Engine,
	w ports.Watcher,
	logger ports.Logger,
	window time.Duration,
) *autoRefresher {
	r := &autoRefresher{
		engine:  engine,
		watcher: w,
		logger:  logger,
		window:  window,
		indexes: make(chan *domain.VendorIndex, 1),
	}
	engine.OnIndexBuilt(r.indexBuilt)
	return r
}

// indexBuilt runs inside the engine's build; it must not block.
// Only the latest index matters.
func (r *autoRefresher) indexBuilt(idx *domain.VendorIndex) {
	for {
		select {
		case r.indexes <- idx:
			return
		default:
		}
		select {
		case <-r.indexes:
		default:
		}
	}
}

// Run watches until ctx is done.
func (r *autoRefresher) Run(ctx context.Context) error {
	if err := r.watcher.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = r.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(r.window, r.refresh)
	defer debouncer.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range r.watcher.Events() {
			if r.relevant(event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = r.watcher.Stop()
			<-done
			return nil
		case idx := <-r.indexes:
			r.track(idx)
		}
	}
}

func (r *autoRefresher) track(idx *domain.VendorIndex) {
	project := idx.Project()
	vendor := project.VendorPath()

	r.mu.Lock()
	r.vendorPath = vendor
	r.configPath = project.Path
	r.mu.Unlock()

	// Re-adding is harmless and restores the watch after the vendor
	// directory was recreated.
	dirs := []string{project.ProjectDir(), filepath.Dir(vendor), vendor}
	for _, dir := range dirs {
		if err := r.watcher.Add(dir); err != nil {
			r.logger.Warn("auto-refresh cannot watch " + dir + ": " + err.Error())
		}
	}
	r.logger.Debug("auto-refresh watching " + vendor)
}

// relevant reports whether a change at path can alter the index: the vendor
// directory itself, one of its entries, or the configuration file.
func (r *autoRefresher) relevant(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.vendorPath == "" {
		return false
	}
	path = filepath.Clean(path)
	return path == r.vendorPath ||
		path == r.configPath ||
		filepath.Dir(path) == r.vendorPath
}

func (r *autoRefresher) refresh(paths []string) {
	r.engine.Invalidate()
	r.logger.Debug("vendor changed, index invalidated: " + strings.Join(paths, ", "))
}
