package treekeep

import (
	"encoding/json"
	"fmt"
)

// Directory is a named node in the catalog holding zero or more files and
// zero or more subdirectories. Files and subdirectories live in independent
// namespaces: a file and a subdirectory may share a name, but no two files
// and no two subdirectories within one Directory may.
//
// A Directory exclusively owns its children. Removing a subdirectory drops
// its entire subtree; there are no back-references to the parent, so all
// navigation runs root to leaf.
type Directory struct {
	name      string
	files     map[string]*File
	fileOrder []string
	dirs      map[string]*Directory
}

// NewDirectory creates an empty Directory with the given name.
func NewDirectory(name string) *Directory {
	return &Directory{
		name:  name,
		files: make(map[string]*File),
		dirs:  make(map[string]*Directory),
	}
}

// Name returns the directory's name.
func (d *Directory) Name() string {
	return d.name
}

// AddDirectory inserts a subdirectory. Returns ErrDuplicateName when a
// subdirectory with the same name already exists.
func (d *Directory) AddDirectory(sub *Directory) error {
	if _, exists := d.dirs[sub.name]; exists {
		return fmt.Errorf("subdirectory %q already exists in %q: %w", sub.name, d.name, ErrDuplicateName)
	}
	d.dirs[sub.name] = sub
	return nil
}

// RemoveDirectory removes the named subdirectory and, by ownership, all of
// its descendants. Returns ErrNotFound when absent.
func (d *Directory) RemoveDirectory(name string) error {
	if _, exists := d.dirs[name]; !exists {
		return fmt.Errorf("subdirectory %q not found in %q: %w", name, d.name, ErrNotFound)
	}
	delete(d.dirs, name)
	return nil
}

// FindDirectory returns the named subdirectory, or nil when absent.
func (d *Directory) FindDirectory(name string) *Directory {
	return d.dirs[name]
}

// AddFile inserts a file. Returns ErrDuplicateName when a file with the same
// name already exists.
func (d *Directory) AddFile(f *File) error {
	if _, exists := d.files[f.Name()]; exists {
		return fmt.Errorf("file %q already exists in %q: %w", f.Name(), d.name, ErrDuplicateName)
	}
	d.files[f.Name()] = f
	d.fileOrder = append(d.fileOrder, f.Name())
	return nil
}

// RemoveFile removes the named file. Returns ErrNotFound when absent.
func (d *Directory) RemoveFile(name string) error {
	if _, exists := d.files[name]; !exists {
		return fmt.Errorf("file %q not found in %q: %w", name, d.name, ErrNotFound)
	}
	delete(d.files, name)
	for i, n := range d.fileOrder {
		if n == name {
			d.fileOrder = append(d.fileOrder[:i], d.fileOrder[i+1:]...)
			break
		}
	}
	return nil
}

// FindFile returns the named file, or nil when absent.
func (d *Directory) FindFile(name string) *File {
	return d.files[name]
}

// Files returns the directory's files in insertion order.
func (d *Directory) Files() []*File {
	out := make([]*File, 0, len(d.fileOrder))
	for _, name := range d.fileOrder {
		out = append(out, d.files[name])
	}
	return out
}

// Directories returns a read view of the subdirectories keyed by name.
func (d *Directory) Directories() map[string]*Directory {
	out := make(map[string]*Directory, len(d.dirs))
	for name, sub := range d.dirs {
		out[name] = sub
	}
	return out
}

// directoryRecord is the wire shape of a serialized directory. The record
// deliberately omits the directory's own name; the parent keys each record
// by name, top level included.
type directoryRecord struct {
	Files       []*File               `json:"files"`
	Directories map[string]*Directory `json:"directories"`
}

// MarshalJSON serializes the directory recursively: files as an array in
// insertion order, subdirectories as an object keyed by name.
func (d *Directory) MarshalJSON() ([]byte, error) {
	rec := directoryRecord{
		Files:       d.Files(),
		Directories: d.dirs,
	}
	if rec.Directories == nil {
		rec.Directories = map[string]*Directory{}
	}
	return json.Marshal(rec)
}

// UnmarshalJSON reconstructs a directory from its record. The name is left
// unset; the caller assigns it from the key the record was stored under.
// Files are replayed through AddFile, so a document carrying two files with
// the same name is rejected rather than silently deduplicated.
func (d *Directory) UnmarshalJSON(data []byte) error {
	var rec directoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	d.files = make(map[string]*File)
	d.fileOrder = nil
	d.dirs = make(map[string]*Directory)
	for _, f := range rec.Files {
		if f == nil {
			return fmt.Errorf("%w: null file record", ErrMalformedDocument)
		}
		if err := d.AddFile(f); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	for name, sub := range rec.Directories {
		if sub == nil {
			return fmt.Errorf("%w: null record for subdirectory %q", ErrMalformedDocument, name)
		}
		sub.name = name
		d.dirs[name] = sub
	}
	return nil
}
