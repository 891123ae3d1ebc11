// Package manager implements the orchestration layer of treekeep: one
// structure bound to one document store, mutated through slash-delimited
// paths and persisted in full after every successful edit.
package manager
