package treekeep

// Logger provides a pluggable logging interface for treekeep operations.
// Implementations must be safe for concurrent use by multiple goroutines.
// Loggers are passed explicitly to constructors; there is no package-level
// logger and no environment-driven registry.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs recoverable conditions, such as an unresolvable path.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
