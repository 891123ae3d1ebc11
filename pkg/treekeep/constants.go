package treekeep

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Operation completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitPathNotFound      = 11 // A path segment did not resolve to a directory
	ExitDuplicateName     = 12 // Name already taken in the target directory
	ExitNotFound          = 13 // Named file/directory/document absent
	ExitMalformedDocument = 14 // Persisted structure could not be parsed
)

const (
	// StructureFileName is the document name of the persisted structure
	// inside the store directory.
	StructureFileName = "file_structure"

	// DefaultStoreDir is the store directory used when neither the CLI
	// flag, the TREEKEEP_STORE environment variable, nor the project
	// config names one.
	DefaultStoreDir = "json_files"

	// DefaultReportFileName is where the report command writes its
	// Markdown output unless overridden.
	DefaultReportFileName = "full_report.md"
)
