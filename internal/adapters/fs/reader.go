package fs

import (
	"errors"
	"io"

	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentReader = (*Reader)(nil)

// Reader reads whole files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the content of the regular file at rel inside root. The
// handle is released on every return path. A file that vanished since it was
// resolved is a read failure.
func (r *Reader) ReadFile(root, rel string) ([]byte, error) {
	f, err := openRegular(root, rel, domain.ErrReadFailed)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrReadFailed, err), "failed to read file"), "path", joinRoot(root, rel))
	}
	return data, nil
}
