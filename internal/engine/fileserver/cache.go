package fileserver

import (
	"strconv"
	"sync"
	"sync/atomic"

	"go.trai.ch/saltbundle/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// IndexCache holds the process-wide vendor index and the location of the
// configuration it was built from.
//
// Readers load the current index without locking. A build publishes a new
// index with a single pointer swap, and only if no invalidation happened
// since the build started.
type IndexCache struct {
	mu         sync.RWMutex
	configPath string

	index      atomic.Pointer[domain.VendorIndex]
	generation atomic.Uint64
	group      singleflight.Group
}

// NewIndexCache creates an empty cache.
func NewIndexCache() *IndexCache {
	return &IndexCache{}
}

// ConfigPath returns the cached configuration location.
func (c *IndexCache) ConfigPath() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configPath, c.configPath != ""
}

// SetConfigPath records the configuration location.
func (c *IndexCache) SetConfigPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configPath = path
}

// ForgetConfigPath clears the cached location if it is still stale.
func (c *IndexCache) ForgetConfigPath(stale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configPath == stale {
		c.configPath = ""
	}
}

// Load returns the published index, or nil.
func (c *IndexCache) Load() *domain.VendorIndex {
	return c.index.Load()
}

// Invalidate drops the published index. The configuration location is kept.
func (c *IndexCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation.Add(1)
	c.index.Store(nil)
}

// LoadOrBuild returns the published index, running build when there is none.
// Concurrent callers share a single build. A failed build is not published.
// published is called once for every index that gets published.
func (c *IndexCache) LoadOrBuild(
	build func() (*domain.VendorIndex, error),
	published func(*domain.VendorIndex),
) (*domain.VendorIndex, error) {
	if idx := c.index.Load(); idx != nil {
		return idx, nil
	}

	gen := c.generation.Load()
	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		if idx := c.index.Load(); idx != nil {
			return idx, nil
		}
		idx, err := build()
		if err != nil {
			return idx, err
		}
		if c.publish(gen, idx) && published != nil {
			published(idx)
		}
		return idx, nil
	})

	idx, _ := v.(*domain.VendorIndex)
	return idx, err
}

func (c *IndexCache) publish(gen uint64, idx *domain.VendorIndex) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation.Load() != gen {
		return false
	}
	c.index.Store(idx)
	return true
}
