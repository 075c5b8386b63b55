package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/adapters/config"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLocator_Locate(t *testing.T) {
	fsys := fstest.MapFS{
		"proj/.salt-dependencies.yaml":              {Data: []byte("vendor_dir: vendor\n")},
		"proj/states/web/top.sls":                   {Data: []byte("base: {}\n")},
		"proj/salt/master":                          {Data: []byte("hash_type: sha256\n")},
		"other/deep/dir/keep":                       {Data: []byte{}},
		"nested/.salt-dependencies.yaml":            {Data: []byte("vendor_dir: outer\n")},
		"nested/inner/.salt-dependencies.yaml":      {Data: []byte("vendor_dir: inner\n")},
		"nested/inner/child/grandchild/placeholder": {Data: []byte{}},
		"dironly/.salt-dependencies.yaml/keep":      {Data: []byte{}},
	}
	locator := config.NewLocator(config.NewRootedFS(fsys))

	tests := []struct {
		name     string
		opts     domain.HostOptions
		expected string
	}{
		{
			name:     "config in cwd",
			opts:     domain.HostOptions{Cwd: "/proj"},
			expected: "/proj/.salt-dependencies.yaml",
		},
		{
			name:     "config in ancestor",
			opts:     domain.HostOptions{Cwd: "/proj/states/web"},
			expected: "/proj/.salt-dependencies.yaml",
		},
		{
			name:     "nearest config wins",
			opts:     domain.HostOptions{Cwd: "/nested/inner/child/grandchild"},
			expected: "/nested/inner/.salt-dependencies.yaml",
		},
		{
			name:     "config dir parent probed before cwd",
			opts:     domain.HostOptions{Cwd: "/nested/inner", ConfigDir: "/proj/salt"},
			expected: "/proj/.salt-dependencies.yaml",
		},
		{
			name:     "config dir parent without config falls back to cwd",
			opts:     domain.HostOptions{Cwd: "/nested", ConfigDir: "/other/deep"},
			expected: "/nested/.salt-dependencies.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locator.Locate(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLocator_Locate_NotFound(t *testing.T) {
	fsys := fstest.MapFS{
		"other/deep/dir/keep":                  {Data: []byte{}},
		"dironly/.salt-dependencies.yaml/keep": {Data: []byte{}},
	}
	locator := config.NewLocator(config.NewRootedFS(fsys))

	for _, cwd := range []string{"/other/deep/dir", "/dironly"} {
		t.Run(cwd, func(t *testing.T) {
			_, err := locator.Locate(domain.HostOptions{Cwd: cwd})
			require.ErrorIs(t, err, domain.ErrConfigNotFound)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, cwd, zErr.Metadata()["cwd"])
		})
	}
}

func TestLocator_Locate_OSFS(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, domain.DirPerm))
	cfg := filepath.Join(root, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(cfg, []byte("vendor_dir: vendor\n"), domain.PrivateFilePerm))

	locator := config.NewLocator(config.NewOSFS())

	got, err := locator.Locate(domain.HostOptions{Cwd: sub})
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	require.NoError(t, os.Remove(cfg))
	_, err = locator.Locate(domain.HostOptions{Cwd: sub})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
