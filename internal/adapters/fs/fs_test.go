package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/core/domain"
)

// writeTree creates files (slash paths relative to root) with their contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), domain.DirPerm))
		require.NoError(t, os.WriteFile(full, []byte(content), domain.PrivateFilePerm))
	}
}

// newFormula lays out a formula root inside a vendor directory next to a
// secret file that must never be reachable from it.
func newFormula(t *testing.T) (formulaRoot, secret string) {
	t.Helper()
	base := t.TempDir()
	formulaRoot = filepath.Join(base, "vendor", "nginx")
	writeTree(t, formulaRoot, map[string]string{
		"init.sls":           "nginx:\n  pkg.installed: []\n",
		"files/nginx.conf":   "worker_processes 1;\n",
		"files/sites/a.conf": "server {}\n",
		".hidden/keep":       "",
	})
	secret = filepath.Join(base, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("top secret"), domain.PrivateFilePerm))
	return formulaRoot, secret
}
