package ports

import (
	"context"

	"go.trai.ch/saltbundle/internal/core/domain"
)

//go:generate mockgen -source=mount.go -destination=mocks/mock_mount.go -package=mocks

// Mounter exposes a Namespace as a read-only filesystem.
type Mounter interface {
	// Mount serves ns at mountpoint and blocks until ctx is done and the
	// filesystem is unmounted.
	Mount(ctx context.Context, mountpoint string, ns Namespace, opts domain.HostOptions) error
}
