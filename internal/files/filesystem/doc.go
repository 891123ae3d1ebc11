// Package filesystem abstracts file-content access for the report
// generator.
//
// The catalog models structure only; when a report needs the actual bytes
// behind a catalog entry it goes through the Provider interface. Two
// implementations exist: OSFileSystem for production use and
// MemoryFileSystem for tests.
package filesystem
