package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
	"go.trai.ch/zerr"
)

// Host adapts the fileserver engine to the host's calling conventions.
// It is the only place where engine errors are classified and logged.
type Host struct {
	engine *fileserver.Engine
	logger ports.Logger
	tracer ports.Tracer
}

var (
	_ ports.Fileserver = (*Host)(nil)
	_ ports.Namespace  = (*Host)(nil)
)

// NewHost creates a Host and reports every index the engine builds.
func NewHost(engine *fileserver.Engine, logger ports.Logger, tracer ports.Tracer) *Host {
	h := &Host{engine: engine, logger: logger, tracer: tracer}
	engine.OnIndexBuilt(h.indexBuilt)
	return h
}

func (h *Host) indexBuilt(idx *domain.VendorIndex) {
	if project := idx.Project(); project.Path != "" {
		h.logger.Debug("loaded " + project.Path + " (vendor_dir=" + project.VendorDirName() + ")")
	}
	if idx.Len() == 0 {
		return
	}
	h.logger.Info(fmt.Sprintf("indexed %d formulas in %s: %s",
		idx.Len(), idx.Project().VendorPath(), strings.Join(idx.Names(), ", ")))
}

// Envs lists the environments served. Only base exists.
func (h *Host) Envs(ctx context.Context) []string {
	_, span := h.tracer.Start(ctx, "fileserver.envs")
	defer span.End()
	return []string{domain.BaseEnvironment}
}

// FindFile resolves a virtual path. Anything unresolved yields an empty
// descriptor.
func (h *Host) FindFile(ctx context.Context, opts domain.HostOptions, path, saltenv string) domain.FileDescriptor {
	_, span := h.tracer.Start(ctx, "fileserver.find_file",
		ports.WithAttribute("path", path),
		ports.WithAttribute("saltenv", saltenv),
	)
	defer span.End()

	if err := checkEnvironment(saltenv); err != nil {
		h.report(span, err)
		return domain.FileDescriptor{}
	}

	desc, err := h.engine.Resolve(opts, path)
	if err != nil {
		h.report(span, err)
		return domain.FileDescriptor{}
	}
	return desc
}

// FileList lists every file of every formula.
func (h *Host) FileList(ctx context.Context, opts domain.HostOptions) []string {
	_, span := h.tracer.Start(ctx, "fileserver.file_list")
	defer span.End()

	files, err := h.engine.ListFiles(opts)
	h.report(span, err)
	span.SetAttribute("count", len(files))
	return files
}

// DirList lists every formula and every directory below it.
func (h *Host) DirList(ctx context.Context, opts domain.HostOptions) []string {
	_, span := h.tracer.Start(ctx, "fileserver.dir_list")
	defer span.End()

	dirs, err := h.engine.ListDirectories(opts)
	h.report(span, err)
	span.SetAttribute("count", len(dirs))
	return dirs
}

// FileHash digests the file at a virtual path with hashType, falling back to
// the host default and then sha256.
func (h *Host) FileHash(ctx context.Context, opts domain.HostOptions, path, hashType string) domain.HashResult {
	_, span := h.tracer.Start(ctx, "fileserver.file_hash",
		ports.WithAttribute("path", path),
		ports.WithAttribute("hash_type", hashType),
	)
	defer span.End()

	desc, err := h.engine.Resolve(opts, path)
	if err != nil {
		h.report(span, err)
		return domain.HashResult{}
	}

	sum, err := h.engine.Hash(opts, desc, hashType)
	if err != nil {
		h.report(span, err)
		return domain.HashResult{}
	}
	return sum
}

// ServeFile returns the content of the file at a virtual path, or no bytes.
func (h *Host) ServeFile(ctx context.Context, opts domain.HostOptions, path string) []byte {
	_, span := h.tracer.Start(ctx, "fileserver.serve_file", ports.WithAttribute("path", path))
	defer span.End()

	data, err := h.readFile(opts, path)
	if err != nil {
		h.report(span, err)
		return []byte{}
	}
	span.SetAttribute("size", len(data))
	return data
}

// Update drops the vendor index so the next request rebuilds it.
func (h *Host) Update(ctx context.Context) bool {
	_, span := h.tracer.Start(ctx, "fileserver.update")
	defer span.End()

	h.engine.Invalidate()
	h.logger.Debug("vendor index invalidated")
	return true
}

// FileRoots lists the absolute formula directories.
func (h *Host) FileRoots(ctx context.Context, opts domain.HostOptions) []string {
	_, span := h.tracer.Start(ctx, "loader.file_roots")
	defer span.End()

	roots, err := h.engine.FileRoots(opts)
	h.report(span, err)
	if len(roots) > 0 {
		h.logger.Info(fmt.Sprintf("added %d formula roots", len(roots)))
	}
	return roots
}

// ExtPillar describes the vendored formulas under the saltbundle key. The
// minion and its existing pillar do not influence the result.
func (h *Host) ExtPillar(ctx context.Context, opts domain.HostOptions, minionID string, _ map[string]any) map[string]any {
	_, span := h.tracer.Start(ctx, "loader.ext_pillar", ports.WithAttribute("minion_id", minionID))
	defer span.End()

	pillar, err := h.engine.Pillar(opts)
	h.report(span, err)
	if pillar.ProjectDir == "" {
		return map[string]any{}
	}
	return pillar.Map()
}

// Stat returns the namespace entry at a virtual path.
func (h *Host) Stat(ctx context.Context, opts domain.HostOptions, path string) (domain.Entry, error) {
	_, span := h.tracer.Start(ctx, "namespace.stat", ports.WithAttribute("path", path))
	defer span.End()

	entry, err := h.engine.Stat(opts, path)
	if err != nil {
		h.report(span, err)
		return domain.Entry{}, err
	}
	return entry, nil
}

// ReadDir lists the directory at a virtual path.
func (h *Host) ReadDir(ctx context.Context, opts domain.HostOptions, path string) ([]domain.Entry, error) {
	_, span := h.tracer.Start(ctx, "namespace.read_dir", ports.WithAttribute("path", path))
	defer span.End()

	entries, err := h.engine.ReadDir(opts, path)
	if err != nil {
		h.report(span, err)
		// A missing vendor directory still lists as an empty root.
		if entries == nil {
			return nil, err
		}
	}
	return entries, nil
}

// ReadFile returns the content of the file at a virtual path.
func (h *Host) ReadFile(ctx context.Context, opts domain.HostOptions, path string) ([]byte, error) {
	_, span := h.tracer.Start(ctx, "namespace.read_file", ports.WithAttribute("path", path))
	defer span.End()

	data, err := h.readFile(opts, path)
	if err != nil {
		h.report(span, err)
		return nil, err
	}
	return data, nil
}

func (h *Host) readFile(opts domain.HostOptions, path string) ([]byte, error) {
	desc, err := h.engine.Resolve(opts, path)
	if err != nil {
		return nil, err
	}
	return h.engine.Read(desc)
}

// report logs err at the level its class calls for.
func (h *Host) report(span ports.Span, err error) {
	if err == nil {
		return
	}

	switch Classify(err) {
	case LevelDebug:
		h.logger.Debug(err.Error())
	case LevelWarn:
		span.RecordError(err)
		h.logger.Warn(err.Error())
	default:
		span.RecordError(err)
		h.logger.Error(err)
	}
}

// Level is the diagnostic level of an error class.
type Level int

const (
	// LevelDebug marks expected misses.
	LevelDebug Level = iota
	// LevelWarn marks a degraded but usable project.
	LevelWarn
	// LevelError marks a failed operation.
	LevelError
)

// Classify maps an engine error onto its diagnostic level.
func Classify(err error) Level {
	switch {
	case errors.Is(err, domain.ErrConfigNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrPathEscapesRoot),
		errors.Is(err, domain.ErrUnknownEnvironment):
		return LevelDebug
	case errors.Is(err, domain.ErrConfigParseFailed),
		errors.Is(err, domain.ErrConfigReadFailed),
		errors.Is(err, domain.ErrVendorDirMissing),
		errors.Is(err, domain.ErrVendorDirUnreadable):
		return LevelWarn
	default:
		return LevelError
	}
}

func checkEnvironment(saltenv string) error {
	if saltenv == "" || saltenv == domain.BaseEnvironment {
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrUnknownEnvironment, "nothing served"), "saltenv", saltenv)
}
