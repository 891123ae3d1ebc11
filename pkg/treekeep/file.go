package treekeep

import (
	"encoding/json"
	"fmt"
)

// File is the minimal representation of a file inside the catalog: a name
// and nothing else. It carries no content, size, or timestamps; actual file
// content stays on disk and is only touched by the report generator.
// A File is immutable once constructed and is identified by its name within
// its parent directory.
type File struct {
	name string
}

// NewFile creates a File with the given name.
func NewFile(name string) *File {
	return &File{name: name}
}

// Name returns the file's name.
func (f *File) Name() string {
	return f.name
}

// fileRecord is the wire shape of a serialized file. The pointer lets
// decoding distinguish a missing "name" key from an empty one.
type fileRecord struct {
	Name *string `json:"name"`
}

// MarshalJSON serializes the file as {"name": ...}.
func (f *File) MarshalJSON() ([]byte, error) {
	name := f.name
	return json.Marshal(fileRecord{Name: &name})
}

// UnmarshalJSON decodes a {"name": ...} record. A record without the "name"
// key is rejected with ErrMalformedRecord.
func (f *File) UnmarshalJSON(data []byte) error {
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("file record: %w: %v", ErrMalformedRecord, err)
	}
	if rec.Name == nil {
		return fmt.Errorf("file record missing \"name\": %w", ErrMalformedRecord)
	}
	f.name = *rec.Name
	return nil
}
