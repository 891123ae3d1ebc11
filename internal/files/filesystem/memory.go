package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider for tests. Paths are normalized to
// forward slashes, the virtual filesystem convention.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

// AddFile registers content under the given path.
func (mfs *MemoryFileSystem) AddFile(filePath string, content []byte) {
	mfs.files[normalize(filePath)] = content
}

// ReadFile implements Provider.ReadFile.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, ok := mfs.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return content, nil
}

// Stat implements Provider.Stat.
func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	content, ok := mfs.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{
		name:    path.Base(normalize(filePath)),
		size:    int64(len(content)),
		modTime: time.Now(),
	}, nil
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
