package fileserver_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports/mocks"
	"go.trai.ch/saltbundle/internal/engine/fileserver"
	"go.uber.org/mock/gomock"
)

const sha256OfOK = "2689367b205c16ce32ed4200942b8b8b1e262dfc70d9bc9fbc77c49699a4f1df"

// The /proj scenario: one formula whose init.sls contains "ok".
func TestEngine_ProjScenario(t *testing.T) {
	p := project{dir: t.TempDir()}
	p.opts = domain.HostOptions{Cwd: p.dir}
	p.write(t, domain.ConfigFileName, "vendor_dir: vendor\n")
	p.write(t, "vendor/nginx/init.sls", "ok")
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)
	assert.Equal(t, p.path("vendor/nginx/init.sls"), desc.RealPath)
	assert.Equal(t, "nginx/init.sls", desc.VirtualPath)
	assert.Equal(t, p.path("vendor/nginx"), desc.Root)

	data, err := engine.Read(desc)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)

	sum, err := engine.Hash(p.opts, desc, "sha256")
	require.NoError(t, err)
	assert.Equal(t, domain.HashResult{Algorithm: "sha256", HexDigest: sha256OfOK}, sum)
}

func TestEngine_Hash_Precedence(t *testing.T) {
	p := newProject(t)
	p.write(t, "vendor/nginx/init.sls", "ok")
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)

	sum, err := engine.Hash(domain.HostOptions{}, desc, "")
	require.NoError(t, err)
	assert.Equal(t, "sha256", sum.Algorithm)
	assert.Equal(t, sha256OfOK, sum.HexDigest)

	sum, err = engine.Hash(domain.HostOptions{HashType: "md5"}, desc, "")
	require.NoError(t, err)
	assert.Equal(t, "md5", sum.Algorithm)
	assert.Equal(t, "444bcb3a3fcf8389296c49467f27e1d6", sum.HexDigest)

	sum, err = engine.Hash(domain.HostOptions{HashType: "md5"}, desc, "sha1")
	require.NoError(t, err)
	assert.Equal(t, "sha1", sum.Algorithm)
	assert.Equal(t, "7a85f4764bbd6daf1c3545efbbf0f279a6dc0beb", sum.HexDigest)
}

func TestEngine_Hash_ReportsNormalizedAlgorithm(t *testing.T) {
	p := newProject(t)
	p.write(t, "vendor/nginx/init.sls", "ok")
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)

	sum, err := engine.Hash(p.opts, desc, "SHA256")
	require.NoError(t, err)
	assert.Equal(t, domain.HashResult{Algorithm: "sha256", HexDigest: sha256OfOK}, sum)

	sum, err = engine.Hash(domain.HostOptions{HashType: " MD5 "}, desc, "")
	require.NoError(t, err)
	assert.Equal(t, "md5", sum.Algorithm)
}

func TestEngine_Hash_DeterminismAndSensitivity(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)

	first, err := engine.Hash(p.opts, desc, "blake3")
	require.NoError(t, err)
	second, err := engine.Hash(p.opts, desc, "blake3")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p.write(t, "vendor/nginx/init.sls", "nginx: {}\n")
	third, err := engine.Hash(p.opts, desc, "blake3")
	require.NoError(t, err)
	assert.NotEqual(t, first.HexDigest, third.HexDigest)
}

func TestEngine_Hash_Errors(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	sum, err := engine.Hash(p.opts, domain.FileDescriptor{}, "")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.True(t, sum.Empty())

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)

	sum, err = engine.Hash(p.opts, desc, "crc32")
	require.ErrorIs(t, err, domain.ErrUnsupportedHashAlgorithm)
	assert.True(t, sum.Empty())

	require.NoError(t, os.Remove(desc.RealPath))
	sum, err = engine.Hash(p.opts, desc, "")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.True(t, sum.Empty())
}

func TestEngine_Read_Vanished(t *testing.T) {
	p := newProject(t)
	engine := newEngine(t)

	data, err := engine.Read(domain.FileDescriptor{})
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.Empty(t, data)

	desc, err := engine.Resolve(p.opts, "nginx/init.sls")
	require.NoError(t, err)
	require.NoError(t, os.Remove(desc.RealPath))

	data, err = engine.Read(desc)
	require.ErrorIs(t, err, domain.ErrReadFailed)
	assert.NotErrorIs(t, err, domain.ErrEntryNotFound)
	assert.Empty(t, data)
}

func TestEngine_Read_RetargetedSymlink(t *testing.T) {
	p := newProject(t)
	p.write(t, "secret.txt", "top secret")
	link := p.path("vendor/nginx/current.sls")
	require.NoError(t, os.Symlink("init.sls", link))
	engine := newEngine(t)

	desc, err := engine.Resolve(p.opts, "nginx/current.sls")
	require.NoError(t, err)

	require.NoError(t, os.Remove(link))
	require.NoError(t, os.Symlink(p.path("secret.txt"), link))

	data, err := engine.Read(desc)
	require.ErrorIs(t, err, domain.ErrReadFailed)
	assert.Empty(t, data)

	sum, err := engine.Hash(p.opts, desc, "")
	require.Error(t, err)
	assert.True(t, sum.Empty())
}

func TestEngine_Hash_UsesPorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockFileHasher(ctrl)
	reader := mocks.NewMockContentReader(ctrl)
	engine := fileserver.New(nil, nil, nil, nil, hasher, reader)

	desc := domain.FileDescriptor{
		RealPath:    "/proj/vendor/nginx/init.sls",
		VirtualPath: "nginx/init.sls",
		Root:        "/proj/vendor/nginx",
	}

	hasher.EXPECT().Supports("xxh64").Return(true)
	hasher.EXPECT().Hash("/proj/vendor/nginx", "init.sls", "xxh64").Return("fc6d24b916145cf9", nil)
	reader.EXPECT().ReadFile("/proj/vendor/nginx", "init.sls").Return([]byte("ok"), nil)

	sum, err := engine.Hash(domain.HostOptions{HashType: "XXH64"}, desc, "")
	require.NoError(t, err)
	assert.Equal(t, "fc6d24b916145cf9", sum.HexDigest)

	data, err := engine.Read(desc)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
}
