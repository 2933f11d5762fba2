package fsys_test

import (
	"os"
	"path/filepath"
	"testing"

	"cheatvault/core/fsys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileDistinguishesMissingFromFailure(t *testing.T) {
	fs := fsys.NewLocal()
	path := filepath.Join(t.TempDir(), "cheats.txt")

	content, exists, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, content)

	require.NoError(t, fs.WriteFile(path, []byte("data")))

	content, exists, err = fs.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "data", string(content))
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	fs := fsys.NewLocal()
	path := filepath.Join(t.TempDir(), "gone.txt")

	assert.NoError(t, fs.Remove(path))

	require.NoError(t, fs.WriteFile(path, []byte("x")))
	assert.NoError(t, fs.Remove(path))

	exists, err := fs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMkdirAllAndRemoveAll(t *testing.T) {
	fs := fsys.NewLocal()
	dir := filepath.Join(t.TempDir(), "a", "b", "cheats")

	require.NoError(t, fs.MkdirAll(dir))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "cheats.txt"), []byte("x")))

	require.NoError(t, fs.RemoveAll(filepath.Dir(dir)))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
