// Package tui provides the interactive terminal pieces of treekeep: a
// read-only structure browser built on bubbletea and detection of whether
// the process is attached to an interactive terminal at all.
package tui
