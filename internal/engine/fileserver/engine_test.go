package fileserver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/adapters/config"
	"go.trai.ch/saltbundle/internal/adapters/fs"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
)

// project is an on-disk project with a vendor directory.
type project struct {
	dir  string
	opts domain.HostOptions
}

func (p project) path(rel string) string {
	return filepath.Join(p.dir, filepath.FromSlash(rel))
}

func (p project) write(t *testing.T, rel, content string) {
	t.Helper()
	full := p.path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), domain.DirPerm))
	require.NoError(t, os.WriteFile(full, []byte(content), domain.PrivateFilePerm))
}

func (p project) mkdir(t *testing.T, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(p.path(rel), domain.DirPerm))
}

// newProject creates a project with the nginx and mysql formulas.
func newProject(t *testing.T) project {
	t.Helper()
	p := project{dir: t.TempDir()}
	p.opts = domain.HostOptions{Cwd: p.dir}
	p.write(t, domain.ConfigFileName, "project: web\nvendor_dir: vendor\n")
	p.write(t, "vendor/nginx/init.sls", "nginx:\n  pkg.installed: []\n")
	p.write(t, "vendor/nginx/files/nginx.conf", "worker_processes 1;\n")
	p.write(t, "vendor/mysql/init.sls", "mysql:\n  pkg.installed: []\n")
	p.mkdir(t, "vendor/mysql/files/empty")
	return p
}

func newEngine(t *testing.T) *fileserver.Engine {
	t.Helper()
	osfs := config.NewOSFS()
	return fileserver.New(
		config.NewLocator(osfs),
		config.NewParser(osfs),
		fs.NewResolver(),
		fs.NewWalker(),
		fs.NewHasher(),
		fs.NewReader(),
	)
}

func TestEngine_Index(t *testing.T) {
	p := newProject(t)
	p.write(t, "vendor/README.md", "not a formula")
	p.mkdir(t, "vendor/.git")
	outside := filepath.Join(t.TempDir(), "apache")
	require.NoError(t, os.MkdirAll(outside, domain.DirPerm))
	require.NoError(t, os.Symlink(outside, p.path("vendor/apache")))

	idx, err := newEngine(t).Index(p.opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"apache", "mysql", "nginx"}, idx.Names())
	root, ok := idx.Root("nginx")
	require.True(t, ok)
	assert.Equal(t, p.path("vendor/nginx"), root)
	assert.True(t, filepath.IsAbs(root))
	root, ok = idx.Root("apache")
	require.True(t, ok)
	assert.Equal(t, p.path("vendor/apache"), root)
}

func TestEngine_Index_CustomVendorDir(t *testing.T) {
	p := newProject(t)
	p.write(t, domain.ConfigFileName, "vendor_dir: formulas\n")
	p.mkdir(t, "formulas/users")

	idx, err := newEngine(t).Index(p.opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, idx.Names())
}

func TestEngine_Index_VendorDirMissing(t *testing.T) {
	p := project{dir: t.TempDir()}
	p.opts = domain.HostOptions{Cwd: p.dir}
	p.write(t, domain.ConfigFileName, "vendor_dir: vendor\n")
	engine := newEngine(t)

	idx, err := engine.Index(p.opts)
	require.ErrorIs(t, err, domain.ErrVendorDirMissing)
	require.NotNil(t, idx)
	assert.Zero(t, idx.Len())

	p.mkdir(t, "vendor/nginx")
	idx, err = engine.Index(p.opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"nginx"}, idx.Names())
}

func TestEngine_Index_ConfigErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		idx, err := newEngine(t).Index(domain.HostOptions{Cwd: t.TempDir()})
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
		assert.Nil(t, idx)
	})

	t.Run("parse error", func(t *testing.T) {
		p := newProject(t)
		p.write(t, domain.ConfigFileName, "")

		idx, err := newEngine(t).Index(p.opts)
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		assert.Nil(t, idx)
	})
}

func TestEngine_Resolve(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)
	assert.True(t, desc.Found())
	assert.Equal(t, p.path("vendor/nginx/init.sls"), desc.RealPath)
	assert.Equal(t, "nginx/init.sls", desc.VirtualPath)
	require.NotNil(t, desc.Stat)
	assert.Equal(t, int64(len("nginx:\n  pkg.installed: []\n")), desc.Stat.Size)

	tests := []struct {
		name     string
		path     string
		sentinel error
	}{
		{name: "unknown formula", path: "apache/init.sls", sentinel: domain.ErrEntryNotFound},
		{name: "formula root", path: "nginx", sentinel: domain.ErrEntryNotFound},
		{name: "formula root with slash", path: "nginx/", sentinel: domain.ErrEntryNotFound},
		{name: "directory", path: "nginx/files", sentinel: domain.ErrEntryNotFound},
		{name: "missing file", path: "nginx/nope.sls", sentinel: domain.ErrEntryNotFound},
		{name: "traversal", path: "nginx/../../../etc/passwd", sentinel: domain.ErrPathEscapesRoot},
		{name: "traversal into sibling", path: "nginx/../mysql/init.sls", sentinel: domain.ErrPathEscapesRoot},
		{name: "empty", path: "", sentinel: domain.ErrEntryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := engine.Resolve(p.opts, tt.path)
			require.ErrorIs(t, err, tt.sentinel)
			assert.False(t, desc.Found())
			assert.Empty(t, desc.VirtualPath)
		})
	}
}

func TestEngine_Resolve_SymlinkEscape(t *testing.T) {
	p := newProject(t)
	p.write(t, "secret.txt", "top secret")
	require.NoError(t, os.Symlink(p.path("secret.txt"), p.path("vendor/nginx/secret")))

	desc, err := newEngine(t).Resolve(p.opts, "nginx/secret")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.False(t, desc.Found())
}

func TestEngine_ListFiles(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	files, err := engine.ListFiles(p.opts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mysql/init.sls",
		"nginx/files/nginx.conf",
		"nginx/init.sls",
	}, files)

	for _, file := range files {
		desc, err := engine.Resolve(p.opts, file)
		require.NoError(t, err, file)
		assert.Equal(t, file, desc.VirtualPath)
	}
}

func TestEngine_ListDirectories(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	dirs, err := engine.ListDirectories(p.opts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mysql",
		"mysql/files",
		"mysql/files/empty",
		"nginx",
		"nginx/files",
	}, dirs)

	idx, err := engine.Index(p.opts)
	require.NoError(t, err)
	for _, name := range idx.Names() {
		assert.Contains(t, dirs, name)
	}
}

func TestEngine_Listings_NoConfig(t *testing.T) {
	engine := newEngine(t)
	opts := domain.HostOptions{Cwd: t.TempDir()}

	files, err := engine.ListFiles(opts)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Empty(t, files)

	dirs, err := engine.ListDirectories(opts)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Empty(t, dirs)

	roots, err := engine.FileRoots(opts)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Empty(t, roots)

	pillar, err := engine.Pillar(opts)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Empty(t, pillar.Formulas)
}

func TestEngine_FileRootsAndPillar(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	roots, err := engine.FileRoots(p.opts)
	require.NoError(t, err)
	assert.Equal(t, []string{p.path("vendor/mysql"), p.path("vendor/nginx")}, roots)

	pillar, err := engine.Pillar(p.opts)
	require.NoError(t, err)
	assert.Equal(t, domain.Pillar{
		ProjectDir:   p.dir,
		VendorDir:    "vendor",
		Formulas:     []string{"mysql", "nginx"},
		FormulaPaths: []string{p.path("vendor/mysql"), p.path("vendor/nginx")},
	}, pillar)
}

func TestEngine_Pillar_VendorDirMissing(t *testing.T) {
	p := project{dir: t.TempDir()}
	p.opts = domain.HostOptions{Cwd: p.dir}
	p.write(t, domain.ConfigFileName, "vendor_dir: deps\n")

	pillar, err := newEngine(t).Pillar(p.opts)
	require.ErrorIs(t, err, domain.ErrVendorDirMissing)
	assert.Equal(t, p.dir, pillar.ProjectDir)
	assert.Equal(t, "deps", pillar.VendorDir)
	assert.Empty(t, pillar.Formulas)
	assert.Empty(t, pillar.FormulaPaths)
}
