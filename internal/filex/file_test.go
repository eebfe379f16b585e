package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "a", "b", "bookshelf.db")

	dir, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "a", "b"), dir)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x", "f.db")
	_, err := EnsureParentDir(path)
	require.NoError(t, err)
	_, err = EnsureParentDir(path)
	require.NoError(t, err)
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	dir, err := EnsureParentDir("bookshelf.db")
	require.NoError(t, err)
	require.Equal(t, ".", dir)
}
