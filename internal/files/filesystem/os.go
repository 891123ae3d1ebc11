package filesystem

import (
	"os"
)

// OSFileSystem implements Provider against the real filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile implements Provider.ReadFile.
func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat implements Provider.Stat.
func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}
