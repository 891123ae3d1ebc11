package treekeep

// DocumentStore abstracts named JSON document storage for the structure
// model. The concrete implementation lives in internal/store; the model only
// needs these three operations to persist and reload itself.
type DocumentStore interface {
	// List returns the names of documents currently present.
	// It never fails; enumeration problems degrade to an empty list.
	List() []string

	// Read loads the named document and decodes it into v.
	// Returns ErrNotFound when the document is absent and
	// ErrMalformedDocument when it cannot be parsed.
	Read(name string, v interface{}) error

	// Write encodes v and durably replaces the named document.
	Write(name string, v interface{}) error
}
