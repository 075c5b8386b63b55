package domain

import (
	"io/fs"
	"path"
	"time"
)

// FileStat is the metadata attached to a resolved file.
type FileStat struct {
	// Mode holds the raw st_mode bits (file type and permissions).
	Mode  uint32
	Ino   uint64
	Dev   uint64
	Nlink uint64
	UID   uint32
	GID   uint32
	Size  int64
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// List renders the stat in the host's positional layout:
// mode, ino, dev, nlink, uid, gid, size, atime, mtime, ctime.
//
//nolint:gosec // G115: inode and device numbers fit int64 on supported platforms
func (s FileStat) List() []int64 {
	return []int64{
		int64(s.Mode),
		int64(s.Ino),
		int64(s.Dev),
		int64(s.Nlink),
		int64(s.UID),
		int64(s.GID),
		s.Size,
		s.Atime.Unix(),
		s.Mtime.Unix(),
		s.Ctime.Unix(),
	}
}

// FileDescriptor is the result of resolving a virtual path.
// Both paths are empty when nothing was found.
type FileDescriptor struct {
	RealPath    string
	VirtualPath string
	Stat        *FileStat
	// Root is the formula directory the file was resolved in. Content is
	// opened relative to it.
	Root string
}

// RootPath returns the slash-separated path of the file inside Root.
func (d FileDescriptor) RootPath() string {
	_, remainder := SplitVirtualPath(d.VirtualPath)
	return remainder
}

// Found reports whether the descriptor points at a file.
func (d FileDescriptor) Found() bool {
	return d.RealPath != ""
}

// Map renders the descriptor in the host's find result layout: path, rel
// and, when known, the stat list.
func (d FileDescriptor) Map() map[string]any {
	m := map[string]any{
		"path": d.RealPath,
		"rel":  d.VirtualPath,
	}
	if d.Stat != nil {
		list := d.Stat.List()
		stat := make([]any, len(list))
		for i, v := range list {
			stat[i] = v
		}
		m["stat"] = stat
	}
	return m
}

// HashResult is the digest of a file. It is empty when nothing was hashed.
type HashResult struct {
	Algorithm string
	HexDigest string
}

// Empty reports whether no digest was computed.
func (h HashResult) Empty() bool {
	return h.HexDigest == ""
}

// Entry is a file or directory of the virtual namespace.
type Entry struct {
	VirtualPath string
	RealPath    string
	Dir         bool
	Stat        FileStat
}

// Perm returns the permission bits of the entry.
func (e Entry) Perm() fs.FileMode {
	return fs.FileMode(e.Stat.Mode).Perm()
}

// Name returns the last element of the virtual path.
func (e Entry) Name() string {
	return path.Base(e.VirtualPath)
}

// Map renders the result as hsum and hash_type, or an empty map.
func (h HashResult) Map() map[string]any {
	if h.Empty() {
		return map[string]any{}
	}
	return map[string]any{
		"hsum":      h.HexDigest,
		"hash_type": h.Algorithm,
	}
}
