package fileserver

import (
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hash digests the file behind desc. The algorithm is the requested one, else
// the host default, else sha256. The result carries the normalized name.
func (e *Engine) Hash(opts domain.HostOptions, desc domain.FileDescriptor, requested string) (domain.HashResult, error) {
	if !desc.Found() {
		return domain.HashResult{}, zerr.Wrap(domain.ErrEntryNotFound, "nothing to hash")
	}

	algorithm := opts.HashAlgorithm(requested)
	if !e.hasher.Supports(algorithm) {
		return domain.HashResult{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedHashAlgorithm, "cannot hash"),
			"algorithm", algorithm)
	}

	digest, err := e.hasher.Hash(desc.Root, desc.RootPath(), algorithm)
	if err != nil {
		return domain.HashResult{}, zerr.With(err, "path", desc.VirtualPath)
	}

	return domain.HashResult{Algorithm: algorithm, HexDigest: digest}, nil
}

// Read returns the content of the file behind desc.
func (e *Engine) Read(desc domain.FileDescriptor) ([]byte, error) {
	if !desc.Found() {
		return []byte{}, zerr.Wrap(domain.ErrEntryNotFound, "nothing to read")
	}

	data, err := e.reader.ReadFile(desc.Root, desc.RootPath())
	if err != nil {
		return []byte{}, zerr.With(err, "path", desc.VirtualPath)
	}
	return data, nil
}
