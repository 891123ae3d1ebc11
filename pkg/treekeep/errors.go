package treekeep

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := mgr.AddFileAt("root/src", treekeep.NewFile("main.go"))
//	if errors.Is(err, treekeep.ErrPathNotFound) {
//	    // Handle unresolved path
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateName indicates an add would occupy a name slot that is
	// already taken within the same namespace of a directory.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound indicates a named file, directory, or stored document
	// does not exist where the caller expected it.
	ErrNotFound = errors.New("not found")

	// ErrPathNotFound indicates a path segment could not be resolved to a
	// directory at the expected level.
	ErrPathNotFound = errors.New("path not found")

	// ErrMalformedRecord indicates a single serialized record is
	// structurally invalid (e.g. a file record without a name).
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMalformedDocument indicates a persisted document could not be
	// parsed or violates the structure invariants.
	ErrMalformedDocument = errors.New("malformed document")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrDuplicateName):
		return ExitDuplicateName
	case errors.Is(err, ErrMalformedRecord), errors.Is(err, ErrMalformedDocument):
		return ExitMalformedDocument
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	}

	return ExitGeneralError
}
