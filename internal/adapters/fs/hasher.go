package fs

import (
	"crypto/md5"  //nolint:gosec // offered for hosts configured with hash_type md5
	"crypto/sha1" //nolint:gosec // offered for hosts configured with hash_type sha1
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

var _ ports.FileHasher = (*Hasher)(nil)

type digestFactory func() (hash.Hash, error)

func plain(newHash func() hash.Hash) digestFactory {
	return func() (hash.Hash, error) { return newHash(), nil }
}

// digests is the registry of supported algorithms, keyed by the names the
// host uses for hash_type.
var digests = map[string]digestFactory{
	"md5":      plain(md5.New),
	"sha1":     plain(sha1.New),
	"sha224":   plain(sha256.New224),
	"sha256":   plain(sha256.New),
	"sha384":   plain(sha512.New384),
	"sha512":   plain(sha512.New),
	"sha3_224": plain(func() hash.Hash { return sha3.New224() }),
	"sha3_256": plain(func() hash.Hash { return sha3.New256() }),
	"sha3_384": plain(func() hash.Hash { return sha3.New384() }),
	"sha3_512": plain(func() hash.Hash { return sha3.New512() }),
	"blake2b":  func() (hash.Hash, error) { return blake2b.New512(nil) },
	"blake2s":  func() (hash.Hash, error) { return blake2s.New256(nil) },
	"blake3":   plain(func() hash.Hash { return blake3.New() }),
	"xxh64":    plain(func() hash.Hash { return xxhash.New() }),
}

// Algorithms returns the supported algorithm names in lexical order.
func Algorithms() []string {
	return slices.Sorted(maps.Keys(digests))
}

// Hasher computes content digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Supports reports whether algorithm is registered.
func (h *Hasher) Supports(algorithm string) bool {
	_, ok := digests[normalize(algorithm)]
	return ok
}

// Hash streams the regular file at rel inside root through algorithm and
// returns the lower-case hex digest. A file that vanished since it was
// resolved reports domain.ErrEntryNotFound.
func (h *Hasher) Hash(root, rel, algorithm string) (string, error) {
	factory, ok := digests[normalize(algorithm)]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedHashAlgorithm, "no such digest"), "algorithm", algorithm)
	}

	digest, err := factory()
	if err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrHashFailed, err), "init digest"), "algorithm", algorithm)
	}

	f, err := openRegular(root, rel, domain.ErrEntryNotFound)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrHashFailed, err), "failed to hash file content"),
			"path", joinRoot(root, rel))
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

func normalize(algorithm string) string {
	return strings.ToLower(strings.TrimSpace(algorithm))
}

// openRegular opens rel inside root and checks it is still a regular file.
// Symlinks are followed only while they stay inside root. A vanished or
// replaced file reports missing.
func openRegular(root, rel string, missing error) (*os.File, error) {
	path := joinRoot(root, rel)

	r, err := os.OpenRoot(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(errors.Join(missing, err), "formula root vanished"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrReadFailed, err), "failed to open formula root"), "path", path)
	}
	defer r.Close() //nolint:errcheck // the opened file outlives the root handle

	f, err := r.Open(filepath.FromSlash(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(errors.Join(missing, err), "file vanished"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrReadFailed, err), "failed to open file"), "path", path)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrReadFailed, err), "failed to stat file"), "path", path)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(missing, "no longer a regular file"), "path", path)
	}

	return f, nil
}

func joinRoot(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
