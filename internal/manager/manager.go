package manager

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// Manager binds one document store to one in-memory structure and offers
// path-addressed mutation with auto-save. Every mutation resolves its path,
// edits the reached directory, then persists the whole structure; a failed
// resolution or edit is a no-op and nothing is written.
//
// All input failures surface as typed errors (treekeep.ErrPathNotFound,
// ErrDuplicateName, ErrNotFound); the caller decides whether any of them is
// fatal. Store failures propagate unchanged.
type Manager struct {
	store     treekeep.DocumentStore
	structure *treekeep.Structure
	logger    treekeep.Logger
}

// New creates a Manager over the given store. When the structure document
// already exists it is loaded; otherwise an empty structure is created and
// persisted immediately. Panics if store or logger is nil.
func New(store treekeep.DocumentStore, logger treekeep.Logger) (*Manager, error) {
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	m := &Manager{store: store, logger: logger}

	structure, err := treekeep.LoadFrom(store, treekeep.StructureFileName)
	switch {
	case err == nil:
		m.structure = structure
		logger.Verbose("loaded existing structure")
	case errors.Is(err, treekeep.ErrNotFound):
		m.structure = treekeep.NewStructure()
		if err := m.save(); err != nil {
			return nil, err
		}
		logger.Info("initialized new structure")
	default:
		return nil, err
	}

	return m, nil
}

// Structure exposes the managed structure for read-only collaborators such
// as the report generator.
func (m *Manager) Structure() *treekeep.Structure {
	return m.structure
}

// AddDirectoryAt inserts dir into the directory the path resolves to, then
// persists the structure.
func (m *Manager) AddDirectoryAt(path string, dir *treekeep.Directory) error {
	target, err := m.resolve(path)
	if err != nil {
		return err
	}
	if err := target.AddDirectory(dir); err != nil {
		return err
	}
	m.logger.Info("added directory %q at %q", dir.Name(), path)
	return m.save()
}

// AddFileAt inserts file into the directory the path resolves to, then
// persists the structure.
func (m *Manager) AddFileAt(path string, file *treekeep.File) error {
	target, err := m.resolve(path)
	if err != nil {
		return err
	}
	if err := target.AddFile(file); err != nil {
		return err
	}
	m.logger.Info("added file %q at %q", file.Name(), path)
	return m.save()
}

// DeleteDirectoryAt removes the named subdirectory (and its subtree) from
// the directory the path resolves to, then persists the structure.
func (m *Manager) DeleteDirectoryAt(path, name string) error {
	target, err := m.resolve(path)
	if err != nil {
		return err
	}
	if err := target.RemoveDirectory(name); err != nil {
		return err
	}
	m.logger.Info("deleted directory %q at %q", name, path)
	return m.save()
}

// DeleteFileAt removes the named file from the directory the path resolves
// to, then persists the structure.
func (m *Manager) DeleteFileAt(path, name string) error {
	target, err := m.resolve(path)
	if err != nil {
		return err
	}
	if err := target.RemoveFile(name); err != nil {
		return err
	}
	m.logger.Info("deleted file %q at %q", name, path)
	return m.save()
}

// AddTopLevel inserts a new top-level directory, then persists the
// structure.
func (m *Manager) AddTopLevel(dir *treekeep.Directory) error {
	if err := m.structure.AddDirectory(dir); err != nil {
		return err
	}
	m.logger.Info("added top-level directory %q", dir.Name())
	return m.save()
}

// DeleteTopLevel removes a top-level directory and its subtree, then
// persists the structure.
func (m *Manager) DeleteTopLevel(name string) error {
	if err := m.structure.RemoveDirectory(name); err != nil {
		return err
	}
	m.logger.Info("deleted top-level directory %q", name)
	return m.save()
}

// Render returns a human-readable rendering of the whole structure as
// indented JSON. Read-only; two successive calls without a mutation in
// between produce identical output.
func (m *Manager) Render() (string, error) {
	data, err := json.MarshalIndent(m.structure, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to render structure: %w", err)
	}
	return string(data), nil
}

// resolve delegates to the structure's resolver; the manager deliberately
// has no path-walking logic of its own.
func (m *Manager) resolve(path string) (*treekeep.Directory, error) {
	target := m.structure.ResolvePath(path)
	if target == nil {
		m.logger.Warn("path %q does not exist", path)
		return nil, fmt.Errorf("path %q: %w", path, treekeep.ErrPathNotFound)
	}
	return target, nil
}

func (m *Manager) save() error {
	if err := m.structure.SaveTo(m.store, treekeep.StructureFileName); err != nil {
		return fmt.Errorf("failed to save structure: %w", err)
	}
	m.logger.Verbose("structure saved")
	return nil
}
