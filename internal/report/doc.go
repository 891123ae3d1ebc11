// Package report renders the structure catalog as a Markdown document with
// the real on-disk content of every tracked file inlined.
//
// Content access goes through the filesystem.Provider abstraction; missing
// files, unreadable files, and binary files render as placeholders instead
// of failing the whole report.
package report
