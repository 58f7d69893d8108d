package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestLoadEnv_ReadsRootFile(t *testing.T) {
	const name = "STUDYDESK_UTILS_TEST_VALUE"
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(name+"=from-file\n"), 0o644))
	chdir(t, root)
	t.Cleanup(func() { os.Unsetenv(name) })

	require.NoError(t, LoadEnv())
	assert.Equal(t, "from-file", os.Getenv(name))
}

func TestLoadEnv_KeepsExistingValues(t *testing.T) {
	const name = "STUDYDESK_UTILS_TEST_KEEP"
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(name+"=from-file\n"), 0o644))
	chdir(t, root)
	t.Setenv(name, "from-env")

	require.NoError(t, LoadEnv())
	assert.Equal(t, "from-env", os.Getenv(name))
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	chdir(t, root)

	assert.NoError(t, LoadEnv())
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
