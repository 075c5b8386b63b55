// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/saltbundle/internal/adapters/config"
	_ "go.trai.ch/saltbundle/internal/adapters/daemon"
	_ "go.trai.ch/saltbundle/internal/adapters/fs"
	_ "go.trai.ch/saltbundle/internal/adapters/fuse"
	_ "go.trai.ch/saltbundle/internal/adapters/logger"
	_ "go.trai.ch/saltbundle/internal/adapters/telemetry"
	_ "go.trai.ch/saltbundle/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/saltbundle/internal/app"
	_ "go.trai.ch/saltbundle/internal/engine/fileserver"
)
