package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/core/domain"
)

func TestSplitVirtualPath(t *testing.T) {
	tests := []struct {
		name          string
		virtualPath   string
		wantFormula   string
		wantRemainder string
	}{
		{name: "nested file", virtualPath: "nginx/files/nginx.conf", wantFormula: "nginx", wantRemainder: "files/nginx.conf"},
		{name: "top level file", virtualPath: "nginx/init.sls", wantFormula: "nginx", wantRemainder: "init.sls"},
		{name: "formula only", virtualPath: "nginx", wantFormula: "nginx", wantRemainder: ""},
		{name: "trailing separator", virtualPath: "nginx/", wantFormula: "nginx", wantRemainder: ""},
		{name: "parent segments kept", virtualPath: "nginx/../../etc/passwd", wantFormula: "nginx", wantRemainder: "../../etc/passwd"},
		{name: "empty", virtualPath: "", wantFormula: "", wantRemainder: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formula, remainder := domain.SplitVirtualPath(tt.virtualPath)
			assert.Equal(t, tt.wantFormula, formula)
			assert.Equal(t, tt.wantRemainder, remainder)
		})
	}
}

func TestJoinVirtualPath(t *testing.T) {
	assert.Equal(t, "nginx", domain.JoinVirtualPath("nginx", ""))
	assert.Equal(t, "nginx", domain.JoinVirtualPath("nginx", "."))
	assert.Equal(t, "nginx/files/a.conf", domain.JoinVirtualPath("nginx", "files/a.conf"))
}

func TestHostOptions_HashAlgorithm(t *testing.T) {
	assert.Equal(t, "sha256", domain.HostOptions{}.HashAlgorithm(""))
	assert.Equal(t, "md5", domain.HostOptions{HashType: "md5"}.HashAlgorithm(""))
	assert.Equal(t, "sha512", domain.HostOptions{HashType: "md5"}.HashAlgorithm("sha512"))
	assert.Equal(t, "sha256", domain.HostOptions{}.HashAlgorithm(" SHA256 "))
	assert.Equal(t, "blake3", domain.HostOptions{HashType: "BLAKE3"}.HashAlgorithm(""))
	assert.Equal(t, "md5", domain.HostOptions{HashType: "md5"}.HashAlgorithm("  "))
}

func TestProjectConfig_VendorPath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")

	t.Run("default vendor dir", func(t *testing.T) {
		cfg := domain.ProjectConfig{Path: filepath.Join(root, domain.ConfigFileName)}
		assert.Equal(t, root, cfg.ProjectDir())
		assert.Equal(t, "vendor", cfg.VendorDirName())
		assert.Equal(t, filepath.Join(root, "vendor"), cfg.VendorPath())
	})

	t.Run("relative vendor dir", func(t *testing.T) {
		cfg := domain.ProjectConfig{Path: filepath.Join(root, domain.ConfigFileName), VendorDir: "third_party/formulas"}
		assert.Equal(t, filepath.Join(root, "third_party", "formulas"), cfg.VendorPath())
	})

	t.Run("absolute vendor dir", func(t *testing.T) {
		abs := filepath.Join(string(filepath.Separator), "srv", "formulas")
		cfg := domain.ProjectConfig{Path: filepath.Join(root, domain.ConfigFileName), VendorDir: abs}
		assert.Equal(t, abs, cfg.VendorPath())
	})
}

func TestVendorIndex(t *testing.T) {
	project := domain.ProjectConfig{Path: "/proj/.salt-dependencies.yaml"}
	source := map[string]string{
		"nginx": "/proj/vendor/nginx",
		"apt":   "/proj/vendor/apt",
	}
	idx := domain.NewVendorIndex(project, source)

	// The index owns its mapping.
	source["redis"] = "/proj/vendor/redis"

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"apt", "nginx"}, idx.Names())
	assert.Equal(t, []string{"/proj/vendor/apt", "/proj/vendor/nginx"}, idx.Roots())

	root, ok := idx.Root("nginx")
	require.True(t, ok)
	assert.Equal(t, "/proj/vendor/nginx", root)

	_, ok = idx.Root("redis")
	assert.False(t, ok)

	var nilIndex *domain.VendorIndex
	assert.Equal(t, 0, nilIndex.Len())
	assert.Empty(t, nilIndex.Names())
	_, ok = nilIndex.Root("nginx")
	assert.False(t, ok)
}

func TestPillar_Map(t *testing.T) {
	project := domain.ProjectConfig{Path: "/proj/.salt-dependencies.yaml", VendorDir: "vendor"}
	idx := domain.NewVendorIndex(project, map[string]string{"nginx": "/proj/vendor/nginx"})

	got := domain.NewPillar(idx).Map()

	assert.Equal(t, map[string]any{
		"saltbundle": map[string]any{
			"project_dir":   "/proj",
			"vendor_dir":    "vendor",
			"formulas":      []any{"nginx"},
			"formula_paths": []any{"/proj/vendor/nginx"},
		},
	}, got)
}

func TestFileStat_List(t *testing.T) {
	mtime := time.Unix(1700000000, 0)
	stat := domain.FileStat{
		Mode:  0o100644,
		Ino:   42,
		Dev:   7,
		Nlink: 1,
		UID:   1000,
		GID:   1000,
		Size:  2,
		Atime: mtime,
		Mtime: mtime,
		Ctime: mtime,
	}

	assert.Equal(t, []int64{0o100644, 42, 7, 1, 1000, 1000, 2, 1700000000, 1700000000, 1700000000}, stat.List())
}

func TestFileDescriptorAndHashResult(t *testing.T) {
	assert.False(t, domain.FileDescriptor{}.Found())
	assert.True(t, domain.FileDescriptor{RealPath: "/proj/vendor/nginx/init.sls"}.Found())
	assert.True(t, domain.HashResult{}.Empty())
	assert.False(t, domain.HashResult{Algorithm: "sha256", HexDigest: "ab"}.Empty())
	assert.Equal(t, "init.sls", domain.Entry{VirtualPath: "nginx/init.sls"}.Name())
	assert.Equal(t, "files/a.conf", domain.FileDescriptor{VirtualPath: "nginx/files/a.conf"}.RootPath())
	assert.Empty(t, domain.FileDescriptor{}.RootPath())
}

func TestFileDescriptor_Map(t *testing.T) {
	assert.Equal(t, map[string]any{"path": "", "rel": ""}, domain.FileDescriptor{}.Map())

	stat := domain.FileStat{Mode: 0o100644, Size: 2}
	m := domain.FileDescriptor{
		RealPath:    "/proj/vendor/nginx/init.sls",
		VirtualPath: "nginx/init.sls",
		Stat:        &stat,
	}.Map()

	assert.Equal(t, "/proj/vendor/nginx/init.sls", m["path"])
	assert.Equal(t, "nginx/init.sls", m["rel"])
	require.Len(t, m["stat"], 10)
	assert.Equal(t, int64(0o100644), m["stat"].([]any)[0])
	assert.Equal(t, int64(2), m["stat"].([]any)[6])
}

func TestHashResult_Map(t *testing.T) {
	assert.Empty(t, domain.HashResult{}.Map())
	assert.Equal(t,
		map[string]any{"hsum": "ab", "hash_type": "md5"},
		domain.HashResult{Algorithm: "md5", HexDigest: "ab"}.Map(),
	)
}
