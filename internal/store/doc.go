// Package store implements durable storage of named JSON documents inside a
// single directory.
//
// Documents are files named <name>.json. Writes go through a temporary file
// followed by an atomic rename, so readers never observe a half-written
// document. Listing degrades to an empty result on enumeration errors;
// read and write failures propagate to the caller.
package store
