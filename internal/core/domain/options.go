package domain

import "strings"

// HostOptions is the configuration context handed to every host entry point.
type HostOptions struct {
	// Cwd is the directory the project configuration search starts from.
	Cwd string
	// ConfigDir is the host's configuration directory (e.g. /etc/salt).
	// Its parent is probed for the project configuration before Cwd.
	ConfigDir string
	// HashType is the host's default digest algorithm.
	HashType string
}

// HashAlgorithm picks the digest for a request: the caller's choice, then the
// host default, then DefaultHashType. Names are trimmed and lower-cased.
func (o HostOptions) HashAlgorithm(requested string) string {
	if name := normalizeAlgorithm(requested); name != "" {
		return name
	}
	if name := normalizeAlgorithm(o.HashType); name != "" {
		return name
	}
	return DefaultHashType
}

func normalizeAlgorithm(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
