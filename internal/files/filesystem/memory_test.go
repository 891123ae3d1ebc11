package filesystem

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("project/env.py", []byte("import os\n"))

	content, err := mfs.ReadFile("project/env.py")
	require.NoError(t, err)
	assert.Equal(t, "import os\n", string(content))
}

func TestMemoryFileSystem_ReadFile_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.ReadFile("nope.py")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("project/env.py", []byte("x = 1\n"))

	info, err := mfs.Stat("project/env.py")
	require.NoError(t, err)
	assert.Equal(t, "env.py", info.Name())
	assert.Equal(t, int64(6), info.Size())
	assert.False(t, info.IsDir())
}

func TestMemoryFileSystem_PathNormalization(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("project/sub/a.py", []byte("a"))

	// Equivalent path spellings resolve to the same entry.
	content, err := mfs.ReadFile("project//sub/./a.py")
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))
}
