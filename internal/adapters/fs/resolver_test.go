package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/adapters/fs"
	"go.trai.ch/saltbundle/internal/core/domain"
)

func TestResolver_Resolve(t *testing.T) {
	root, _ := newFormula(t)
	resolver := fs.NewResolver()

	entry, err := resolver.Resolve(root, "init.sls")
	require.NoError(t, err)
	assert.Equal(t, "init.sls", entry.VirtualPath)
	assert.Equal(t, filepath.Join(root, "init.sls"), entry.RealPath)
	assert.False(t, entry.Dir)
	assert.Equal(t, int64(len("nginx:\n  pkg.installed: []\n")), entry.Stat.Size)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), entry.Perm())

	entry, err = resolver.Resolve(root, "files/sites")
	require.NoError(t, err)
	assert.True(t, entry.Dir)
	assert.Equal(t, "files/sites", entry.VirtualPath)

	entry, err = resolver.Resolve(root, "")
	require.NoError(t, err)
	assert.True(t, entry.Dir)
	assert.Empty(t, entry.VirtualPath)
	assert.Equal(t, root, entry.RealPath)

	entry, err = resolver.Resolve(root, "files/../init.sls")
	require.NoError(t, err)
	assert.Equal(t, "init.sls", entry.VirtualPath)
}

func TestResolver_Resolve_Containment(t *testing.T) {
	root, secret := newFormula(t)
	require.NoError(t, os.Symlink(secret, filepath.Join(root, "escape")))
	require.NoError(t, os.Symlink("../../secret.txt", filepath.Join(root, "relative-escape")))
	require.NoError(t, os.Symlink("files/nginx.conf", filepath.Join(root, "inside")))

	resolver := fs.NewResolver()

	tests := []struct {
		name      string
		remainder string
		sentinel  error
	}{
		{name: "parent traversal", remainder: "../../../etc/passwd", sentinel: domain.ErrPathEscapesRoot},
		{name: "parent of root", remainder: "..", sentinel: domain.ErrPathEscapesRoot},
		{name: "traversal after descent", remainder: "files/../../secret.txt", sentinel: domain.ErrPathEscapesRoot},
		{name: "absolute remainder", remainder: "/etc/passwd", sentinel: domain.ErrPathEscapesRoot},
		{name: "absolute symlink", remainder: "escape", sentinel: domain.ErrEntryNotFound},
		{name: "relative symlink", remainder: "relative-escape", sentinel: domain.ErrEntryNotFound},
		{name: "missing", remainder: "nope.sls", sentinel: domain.ErrEntryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(root, tt.remainder)
			require.ErrorIs(t, err, tt.sentinel)
		})
	}

	entry, err := resolver.Resolve(root, "inside")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "inside"), entry.RealPath)
	assert.False(t, entry.Dir)
}

func TestResolver_ReadDir(t *testing.T) {
	root, secret := newFormula(t)
	require.NoError(t, os.Symlink(secret, filepath.Join(root, "files", "escape")))

	resolver := fs.NewResolver()

	entries, err := resolver.ReadDir(root, "files")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.VirtualPath)
	}
	assert.Equal(t, []string{"files/nginx.conf", "files/sites"}, names)
	assert.True(t, entries[1].Dir)

	entries, err = resolver.ReadDir(root, "")
	require.NoError(t, err)
	names = names[:0]
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{".hidden", "files", "init.sls"}, names)

	_, err = resolver.ReadDir(root, "init.sls")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	_, err = resolver.ReadDir(root, "../")
	require.ErrorIs(t, err, domain.ErrPathEscapesRoot)
}

func TestResolver_MissingRoot(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.Resolve(filepath.Join(t.TempDir(), "gone"), "init.sls")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}
