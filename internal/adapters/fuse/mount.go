// Package fuse mounts the vendor namespace as a read-only FUSE filesystem.
package fuse

import (
	"context"
	"errors"
	"os"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FsName is the filesystem name reported in the mount table.
	FsName = "saltbundle"

	entryTimeout    = time.Second
	attrTimeout     = time.Second
	negativeTimeout = 100 * time.Millisecond
)

// Mounter implements ports.Mounter with go-fuse.
type Mounter struct {
	logger ports.Logger
}

var _ ports.Mounter = (*Mounter)(nil)

// NewMounter creates a Mounter.
func NewMounter(logger ports.Logger) *Mounter {
	return &Mounter{logger: logger}
}

// Mount serves ns at mountpoint until ctx is done. The mountpoint is created
// when missing.
func (m *Mounter) Mount(ctx context.Context, mountpoint string, ns ports.Namespace, opts domain.HostOptions) error {
	if err := os.MkdirAll(mountpoint, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrMountFailed, err), "failed to create mountpoint"),
			"path", mountpoint)
	}

	server, err := m.mount(mountpoint, ns, opts)
	if err != nil {
		return err
	}
	m.logger.Info("mounted vendor namespace at " + mountpoint)

	stop := context.AfterFunc(ctx, func() {
		if err := server.Unmount(); err != nil {
			m.logger.Warn("unmount " + mountpoint + ": " + err.Error())
		}
	})
	defer stop()

	server.Wait()
	m.logger.Info("unmounted " + mountpoint)
	return nil
}

func (m *Mounter) mount(mountpoint string, ns ports.Namespace, opts domain.HostOptions) (*fuse.Server, error) {
	root := &node{tree: &tree{ns: ns, opts: opts, logger: m.logger}}

	entry, attr, negative := entryTimeout, attrTimeout, negativeTimeout
	server, err := gofuse.Mount(mountpoint, root, &gofuse.Options{
		EntryTimeout:    &entry,
		AttrTimeout:     &attr,
		NegativeTimeout: &negative,
		MountOptions: fuse.MountOptions{
			FsName:  FsName,
			Name:    FsName,
			Options: []string{"ro"},
		},
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrMountFailed, err), "fuse mount failed"),
			"path", mountpoint)
	}
	return server, nil
}
