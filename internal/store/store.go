package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// Extension is the suffix of every document managed by a Store.
const Extension = ".json"

// Store reads and writes named JSON documents inside one directory.
// It implements treekeep.DocumentStore. One catalog owns one Store for its
// lifetime; concurrent access from multiple processes against the same
// directory is out of scope.
type Store struct {
	dir    string
	logger treekeep.Logger
}

// New creates a Store bound to the given directory, creating it when absent.
// Panics if logger is nil.
func New(dir string, logger treekeep.Logger) (*Store, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory this store is bound to.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the names (without extension) of JSON documents present.
// Enumeration errors degrade to an empty list; the cause is logged.
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("failed to list documents in %q: %v", s.dir, err)
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	return names
}

// Read loads the named document and decodes it into v.
// Returns treekeep.ErrNotFound when the document is absent and an error
// matching treekeep.ErrMalformedDocument when it cannot be parsed.
func (s *Store) Read(name string, v interface{}) error {
	path := s.documentPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %q: %w", name, treekeep.ErrNotFound)
		}
		return fmt.Errorf("failed to read document %q: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("document %q: %w: %v", name, treekeep.ErrMalformedDocument, err)
	}
	return nil
}

// Write encodes v as indented JSON and replaces the named document. The
// content is written to a uniquely named temporary file in the same
// directory, synced, and renamed over the target so a failure mid-write
// never leaves a truncated document behind.
func (s *Store) Write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", name, err)
	}

	path := s.documentPath(name)
	tmp := path + ".tmp." + uuid.NewString()
	if err := s.writeFileSynced(tmp, data); err != nil {
		return fmt.Errorf("failed to write document %q: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace document %q: %w", name, err)
	}
	s.logger.Verbose("wrote document %q (%d bytes)", name, len(data))
	return nil
}

func (s *Store) writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (s *Store) documentPath(name string) string {
	return filepath.Join(s.dir, name+Extension)
}
