package fuse

import (
	"context"
	"errors"
	"path"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// tree is shared by every node of one mount.
type tree struct {
	ns     ports.Namespace
	opts   domain.HostOptions
	logger ports.Logger
}

// node is a file or directory at a virtual path. The root has the empty path.
// Nodes hold no content; every call asks the namespace again so a refresh is
// visible once the kernel timeouts expire.
type node struct {
	gofuse.Inode
	tree *tree
	path string
}

var (
	_ gofuse.InodeEmbedder = (*node)(nil)
	_ gofuse.NodeLookuper  = (*node)(nil)
	_ gofuse.NodeReaddirer = (*node)(nil)
	_ gofuse.NodeGetattrer = (*node)(nil)
	_ gofuse.NodeSetattrer = (*node)(nil)
	_ gofuse.NodeOpener    = (*node)(nil)
	_ gofuse.NodeReader    = (*node)(nil)
)

func (n *node) child(name string) string {
	if n.path == "" {
		return name
	}
	return path.Join(n.path, name)
}

func (n *node) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	childPath := n.child(name)
	entry, err := n.tree.ns.Stat(ctx, n.tree.opts, childPath)
	if err != nil {
		return nil, n.tree.errno(err)
	}

	fillAttr(entry, &out.Attr)
	child := n.NewInode(ctx, &node{tree: n.tree, path: childPath}, gofuse.StableAttr{Mode: fileType(entry)})
	return child, gofuse.OK
}

func (n *node) Readdir(ctx context.Context) (gofuse.DirStream, syscall.Errno) {
	entries, err := n.tree.ns.ReadDir(ctx, n.tree.opts, n.path)
	if err != nil {
		return nil, n.tree.errno(err)
	}
	return gofuse.NewListDirStream(dirEntries(entries)), gofuse.OK
}

func (n *node) Getattr(ctx context.Context, _ gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	entry, err := n.tree.ns.Stat(ctx, n.tree.opts, n.path)
	if err != nil {
		if n.path != "" {
			return n.tree.errno(err)
		}
		// The root stays a directory without a project.
		entry = domain.Entry{Dir: true}
	}
	fillAttr(entry, &out.Attr)
	return gofuse.OK
}

// Setattr rejects every change.
func (n *node) Setattr(context.Context, gofuse.FileHandle, *fuse.SetAttrIn, *fuse.AttrOut) syscall.Errno {
	return syscall.EROFS
}

func (n *node) Open(ctx context.Context, flags uint32) (gofuse.FileHandle, uint32, syscall.Errno) {
	if flags&(syscall.O_WRONLY|syscall.O_RDWR|syscall.O_TRUNC|syscall.O_APPEND) != 0 {
		return nil, 0, syscall.EROFS
	}

	data, err := n.tree.ns.ReadFile(ctx, n.tree.opts, n.path)
	if err != nil {
		return nil, 0, n.tree.errno(err)
	}
	return &handle{data: data}, fuse.FOPEN_DIRECT_IO, gofuse.OK
}

func (n *node) Read(_ context.Context, f gofuse.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	h, ok := f.(*handle)
	if !ok {
		return nil, syscall.EBADF
	}
	return fuse.ReadResultData(h.slice(dest, off)), gofuse.OK
}

// handle holds the content read when the file was opened.
type handle struct {
	data []byte
}

func (h *handle) slice(dest []byte, off int64) []byte {
	if off < 0 || off >= int64(len(h.data)) {
		return nil
	}
	end := min(off+int64(len(dest)), int64(len(h.data)))
	return h.data[off:end]
}

// errno maps namespace errors to the kernel's view. Lookups that miss are
// routine; anything else is logged.
func (t *tree) errno(err error) syscall.Errno {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrPathEscapesRoot),
		errors.Is(err, domain.ErrConfigNotFound),
		errors.Is(err, domain.ErrVendorDirMissing):
		return syscall.ENOENT
	case errors.Is(err, domain.ErrVendorDirUnreadable):
		t.logger.Warn(err.Error())
		return syscall.EACCES
	default:
		t.logger.Error(err)
		return syscall.EIO
	}
}

func fileType(e domain.Entry) uint32 {
	if e.Dir {
		return syscall.S_IFDIR
	}
	return syscall.S_IFREG
}

// fillAttr reports entries with write bits stripped.
//
//nolint:gosec // G115: sizes are never negative
func fillAttr(e domain.Entry, out *fuse.Attr) {
	perm := uint32(e.Perm()) &^ 0o222
	if e.Dir && perm == 0 {
		perm = 0o555
	}
	out.Mode = fileType(e) | perm
	if !e.Dir {
		out.Size = uint64(e.Stat.Size)
		out.Blocks = (out.Size + 511) / 512
	}
	out.Nlink = 1
	if !e.Stat.Mtime.IsZero() {
		mtime := e.Stat.Mtime
		out.SetTimes(nil, &mtime, nil)
	}
}

func dirEntries(entries []domain.Entry) []fuse.DirEntry {
	out := make([]fuse.DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, fuse.DirEntry{Name: e.Name(), Mode: fileType(e)})
	}
	return out
}
