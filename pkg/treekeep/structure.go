package treekeep

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Structure is the root aggregate of the catalog: the full set of top-level
// directories, keyed by unique names. It is the unit of persistence; the
// whole structure is written and read as one document, never partially.
type Structure struct {
	dirs map[string]*Directory
}

// NewStructure creates an empty Structure.
func NewStructure() *Structure {
	return &Structure{dirs: make(map[string]*Directory)}
}

// AddDirectory inserts a top-level directory. Returns ErrDuplicateName when
// a top-level directory with the same name already exists.
func (s *Structure) AddDirectory(dir *Directory) error {
	if _, exists := s.dirs[dir.name]; exists {
		return fmt.Errorf("top-level directory %q already exists: %w", dir.name, ErrDuplicateName)
	}
	s.dirs[dir.name] = dir
	return nil
}

// RemoveDirectory removes the named top-level directory and its whole
// subtree. Returns ErrNotFound when absent.
func (s *Structure) RemoveDirectory(name string) error {
	if _, exists := s.dirs[name]; !exists {
		return fmt.Errorf("top-level directory %q not found: %w", name, ErrNotFound)
	}
	delete(s.dirs, name)
	return nil
}

// FindDirectory returns the named top-level directory, or nil when absent.
func (s *Structure) FindDirectory(name string) *Directory {
	return s.dirs[name]
}

// ListDirectories returns a read view of the top-level directories keyed by
// name.
func (s *Structure) ListDirectories() map[string]*Directory {
	out := make(map[string]*Directory, len(s.dirs))
	for name, dir := range s.dirs {
		out[name] = dir
	}
	return out
}

// ResolvePath walks a slash-delimited path from a top-level directory name
// through nested subdirectory names and returns the directory the final
// segment denotes. Empty segments (leading, trailing, or doubled slashes)
// are discarded. Returns nil when the path is empty or any segment does not
// exist at its level. Resolution is strictly root to leaf; there is no "..",
// no wildcard, no backtracking.
//
// This is the only path resolution routine in the module; the manager
// delegates here rather than re-walking the tree itself.
func (s *Structure) ResolvePath(path string) *Directory {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil
	}
	current := s.dirs[segments[0]]
	if current == nil {
		return nil
	}
	for _, segment := range segments[1:] {
		current = current.FindDirectory(segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// splitPath splits on "/" and drops empty segments.
func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// MarshalJSON serializes the structure as an object mapping each top-level
// directory name to its record.
func (s *Structure) MarshalJSON() ([]byte, error) {
	dirs := s.dirs
	if dirs == nil {
		dirs = map[string]*Directory{}
	}
	return json.Marshal(dirs)
}

// UnmarshalJSON reconstructs a structure from a top-level name-to-record
// object, assigning each directory its key as its name.
func (s *Structure) UnmarshalJSON(data []byte) error {
	var dirs map[string]*Directory
	if err := json.Unmarshal(data, &dirs); err != nil {
		return err
	}
	s.dirs = make(map[string]*Directory, len(dirs))
	for name, dir := range dirs {
		if dir == nil {
			return fmt.Errorf("%w: null record for top-level directory %q", ErrMalformedDocument, name)
		}
		dir.name = name
		s.dirs[name] = dir
	}
	return nil
}

// SaveTo writes the whole structure as one document through the store.
// Store failures propagate unchanged.
func (s *Structure) SaveTo(store DocumentStore, name string) error {
	return store.Write(name, s)
}

// LoadFrom reads the named document from the store and deserializes it into
// a fresh Structure. Returns ErrNotFound when the document is absent and an
// error matching ErrMalformedDocument when it cannot be parsed.
func LoadFrom(store DocumentStore, name string) (*Structure, error) {
	s := NewStructure()
	if err := store.Read(name, s); err != nil {
		return nil, err
	}
	return s, nil
}
