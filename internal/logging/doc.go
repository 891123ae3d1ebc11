// Package logging provides concrete implementations of the treekeep.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Loggers are handed to component constructors explicitly; nothing in this
// package reads the environment or keeps process-wide state.
package logging
