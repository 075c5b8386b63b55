package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no project configuration exists in the searched directories.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrVendorDirMissing is returned when the configured vendor directory does not exist.
	ErrVendorDirMissing = zerr.New("vendor directory does not exist")

	// ErrVendorDirUnreadable is returned when the vendor directory exists but cannot be listed.
	ErrVendorDirUnreadable = zerr.New("failed to list vendor directory")

	// ErrEntryNotFound is returned when a virtual path does not resolve to a regular file.
	ErrEntryNotFound = zerr.New("entry not found")

	// ErrPathEscapesRoot is returned when a virtual path points outside its formula root.
	ErrPathEscapesRoot = zerr.New("path escapes formula root")

	// ErrUnsupportedHashAlgorithm is returned when a digest name is not registered.
	ErrUnsupportedHashAlgorithm = zerr.New("unsupported hash algorithm")

	// ErrReadFailed is returned when a resolved file cannot be read.
	ErrReadFailed = zerr.New("failed to read file")

	// ErrHashFailed is returned when a resolved file cannot be hashed.
	ErrHashFailed = zerr.New("failed to hash file content")

	// ErrUnknownEnvironment is returned when a request names an environment other than base.
	ErrUnknownEnvironment = zerr.New("unknown environment")

	// ErrHostOptionsInvalid is returned when the host options cannot be assembled.
	ErrHostOptionsInvalid = zerr.New("invalid host options")

	// ErrDaemonUnavailable is returned when no daemon answers on the socket.
	ErrDaemonUnavailable = zerr.New("daemon is not running")

	// ErrMountFailed is returned when the namespace cannot be mounted.
	ErrMountFailed = zerr.New("failed to mount namespace")
)
