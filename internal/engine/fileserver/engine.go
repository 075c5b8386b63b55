// Package fileserver implements the vendor-formula namespace: it builds and
// caches the vendor index and resolves, lists, hashes and reads formula files.
package fileserver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine serves the virtual namespace of vendored formulas.
// All methods are safe for concurrent use.
type Engine struct {
	locator  ports.ConfigLocator
	parser   ports.ProjectConfigParser
	resolver ports.PathResolver
	walker   ports.TreeWalker
	hasher   ports.FileHasher
	reader   ports.ContentReader

	cache *IndexCache

	observersMu sync.RWMutex
	observers   []func(*domain.VendorIndex)
}

// New creates an Engine with an empty cache.
func New(
	locator ports.ConfigLocator,
	parser ports.ProjectConfigParser,
	resolver ports.PathResolver,
	walker ports.TreeWalker,
	hasher ports.FileHasher,
	reader ports.ContentReader,
) *Engine {
	return &Engine{
		locator:  locator,
		parser:   parser,
		resolver: resolver,
		walker:   walker,
		hasher:   hasher,
		reader:   reader,
		cache:    NewIndexCache(),
	}
}

// OnIndexBuilt registers fn to be called with every newly published index.
func (e *Engine) OnIndexBuilt(fn func(*domain.VendorIndex)) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()
	e.observers = append(e.observers, fn)
}

// Index returns the vendor index, building it on first use.
//
// When the vendor directory is missing or unreadable the returned index is
// empty (never nil) and the error says why; such an index is not cached.
// For configuration errors the index is nil.
func (e *Engine) Index(opts domain.HostOptions) (*domain.VendorIndex, error) {
	return e.cache.LoadOrBuild(func() (*domain.VendorIndex, error) {
		return e.build(opts)
	}, e.notify)
}

// Cached returns the published index without building one, or nil.
func (e *Engine) Cached() *domain.VendorIndex {
	return e.cache.Load()
}

// Invalidate drops the cached index. The configuration location is kept.
// It is safe to call at any time, including before the first build.
func (e *Engine) Invalidate() {
	e.cache.Invalidate()
}

func (e *Engine) notify(idx *domain.VendorIndex) {
	e.observersMu.RLock()
	defer e.observersMu.RUnlock()
	for _, fn := range e.observers {
		fn(idx)
	}
}

func (e *Engine) build(opts domain.HostOptions) (*domain.VendorIndex, error) {
	configPath, err := e.configPath(opts)
	if err != nil {
		return nil, err
	}

	project, err := e.parser.Parse(configPath)
	if err != nil {
		return nil, err
	}

	vendorPath := project.VendorPath()
	children, err := os.ReadDir(vendorPath)
	if err != nil {
		empty := domain.NewVendorIndex(project, nil)
		if errors.Is(err, fs.ErrNotExist) {
			return empty, zerr.With(zerr.Wrap(domain.ErrVendorDirMissing, "no formulas"), "path", vendorPath)
		}
		return empty, zerr.With(zerr.Wrap(errors.Join(domain.ErrVendorDirUnreadable, err), "no formulas"), "path", vendorPath)
	}

	formulas := make(map[string]string, len(children))
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		root := filepath.Join(vendorPath, name)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		formulas[name] = root
	}

	return domain.NewVendorIndex(project, formulas), nil
}

// configPath returns the cached configuration location while the file still
// exists, and searches again otherwise. Misses are not cached.
func (e *Engine) configPath(opts domain.HostOptions) (string, error) {
	if cached, ok := e.cache.ConfigPath(); ok {
		if info, err := os.Stat(cached); err == nil && !info.IsDir() {
			return cached, nil
		}
		e.cache.ForgetConfigPath(cached)
	}

	found, err := e.locator.Locate(opts)
	if err != nil {
		return "", err
	}
	e.cache.SetConfigPath(found)
	return found, nil
}
