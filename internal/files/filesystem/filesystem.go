package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider reads real file content for catalog entries. The catalog itself
// never touches the disk; only the report generator does, and always through
// this interface so tests can substitute an in-memory implementation.
type Provider interface {
	// ReadFile returns the content of the file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
