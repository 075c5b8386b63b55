package config_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/adapters/config"
)

func TestRootedFS(t *testing.T) {
	rfs := config.NewRootedFS(fstest.MapFS{
		"srv/salt/.salt-dependencies.yaml": {Data: []byte("vendor_dir: vendor\n")},
	})

	data, err := rfs.ReadFile("/srv/salt/.salt-dependencies.yaml")
	require.NoError(t, err)
	assert.Equal(t, "vendor_dir: vendor\n", string(data))

	info, err := rfs.Stat("/srv/salt/../salt")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	root, err := rfs.Stat("/")
	require.NoError(t, err)
	assert.True(t, root.IsDir())

	_, err = rfs.Stat("/srv/other")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = rfs.ReadFile("srv/salt/.salt-dependencies.yaml")
	require.ErrorIs(t, err, fs.ErrInvalid)
}
