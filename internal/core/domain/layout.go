package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".salt-dependencies.yaml"

	// DefaultVendorDir is the vendor directory used when the config does not name one.
	DefaultVendorDir = "vendor"

	// BaseEnvironment is the only environment the namespace serves.
	BaseEnvironment = "base"

	// DefaultHashType is the digest used when neither the caller nor the host chooses one.
	DefaultHashType = "sha256"

	// PillarKey is the top-level key of the external pillar.
	PillarKey = "saltbundle"

	// StateDirName is the name of the internal runtime directory.
	StateDirName = ".saltbundle"

	// DaemonSocketName is the filename of the daemon's Unix socket.
	DaemonSocketName = "daemon.sock"

	// DaemonPIDName is the filename of the daemon PID file.
	DaemonPIDName = "daemon.pid"

	// DaemonLogName is the filename of a spawned daemon's log.
	DaemonLogName = "daemon.log"

	// VirtualSeparator separates the formula name from the path inside it.
	VirtualSeparator = "/"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm restricts the daemon socket to its owner (rw-------).
	SocketPerm = 0o600
)

// DefaultStatePath returns the default root directory for saltbundle runtime state.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultDaemonSocketPath returns the default path of the daemon socket.
// It joins .saltbundle and daemon.sock.
func DefaultDaemonSocketPath() string {
	return filepath.Join(StateDirName, DaemonSocketName)
}

// DaemonPIDPath returns the PID file that sits next to the given socket.
func DaemonPIDPath(socketPath string) string {
	return filepath.Join(filepath.Dir(socketPath), DaemonPIDName)
}

// DaemonLogPath returns the log file that sits next to the given socket.
func DaemonLogPath(socketPath string) string {
	return filepath.Join(filepath.Dir(socketPath), DaemonLogName)
}
