package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/autodoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pr-body.txt")

	err := fs.WriteFileAtomic(path, []byte("summary\n"), 0o644)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "summary\n", string(data))

	// No temporary file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomic_OverwritesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	err := fs.WriteFileAtomic(path, []byte("new content"), 0o644)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))
}

func TestAppendEnv_CreatesAndAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "github_env")

	require.NoError(t, fs.AppendEnv(path, "AUTODOC_RUN_ID", "42"))
	require.NoError(t, fs.AppendEnv(path, "OTHER", "value"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AUTODOC_RUN_ID=42\nOTHER=value\n", string(data))
}

func TestAppendEnv_PreservesExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "github_env")
	require.NoError(t, os.WriteFile(path, []byte("EXISTING=1\n"), 0o644))

	require.NoError(t, fs.AppendEnv(path, "AUTODOC_RUN_ID", "7"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EXISTING=1\nAUTODOC_RUN_ID=7\n", string(data))
}
