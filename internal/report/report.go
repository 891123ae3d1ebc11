package report

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vvka-141/treekeep/internal/files/filesystem"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// Placeholders rendered instead of content when a catalog entry cannot be
// read back as text.
const (
	missingPlaceholder = "<FILE NOT FOUND ON DISK>"
)

// Generator builds a Markdown report of every file in a structure, pulling
// the actual content off disk through a filesystem provider. The catalog
// only knows names; this is the one component that couples it back to real
// file content.
type Generator struct {
	fsProvider filesystem.Provider
	logger     treekeep.Logger
}

// NewGenerator creates a report generator reading through the given
// provider. Panics if fsProvider or logger is nil.
func NewGenerator(fsProvider filesystem.Provider, logger treekeep.Logger) *Generator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{fsProvider: fsProvider, logger: logger}
}

// fileEntry pairs a catalog path with the rendered body of its content
// block.
type fileEntry struct {
	path string
	body string
}

// Generate walks the whole structure and returns one Markdown document.
// contentRoot, when non-empty, is prepended to catalog paths before reading
// from disk; the report always shows the catalog path.
func (g *Generator) Generate(structure *treekeep.Structure, contentRoot string) string {
	lines := []string{
		"# File Report",
		"",
		"Below is a list of files and their contents, as tracked by the",
		"current structure catalog.",
	}

	dirs := structure.ListDirectories()
	if len(dirs) == 0 {
		lines = append(lines, "", "*(No directories found in the catalog.)*")
		return strings.Join(lines, "\n") + "\n"
	}

	for _, name := range sortedKeys(dirs) {
		lines = append(lines, "", fmt.Sprintf("## Directory: `%s`", name), "")

		entries := g.collect("", dirs[name], contentRoot)
		if len(entries) == 0 {
			lines = append(lines, "*No files found in this directory.*")
			continue
		}
		for _, entry := range entries {
			lines = append(lines,
				fmt.Sprintf("### `%s`", entry.path),
				"```",
				entry.body,
				"```",
				"")
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// collect gathers file entries for a directory subtree, files first in
// insertion order, then subdirectories in name order.
func (g *Generator) collect(prefix string, dir *treekeep.Directory, contentRoot string) []fileEntry {
	var entries []fileEntry

	for _, file := range dir.Files() {
		catalogPath := path.Join(prefix, dir.Name(), file.Name())
		entries = append(entries, fileEntry{
			path: catalogPath,
			body: g.readBody(catalogPath, contentRoot),
		})
	}

	subs := dir.Directories()
	for _, name := range sortedKeys(subs) {
		entries = append(entries, g.collect(path.Join(prefix, dir.Name()), subs[name], contentRoot)...)
	}

	return entries
}

func (g *Generator) readBody(catalogPath, contentRoot string) string {
	diskPath := catalogPath
	if contentRoot != "" {
		diskPath = path.Join(contentRoot, catalogPath)
	}

	content, err := g.fsProvider.ReadFile(diskPath)
	if err != nil {
		if isNotExist(err) {
			g.logger.Warn("file not found on disk: %s", diskPath)
			return missingPlaceholder
		}
		g.logger.Error("could not read file %q: %v", diskPath, err)
		return fmt.Sprintf("<ERROR: %v>", err)
	}

	if !isText(content) {
		detected := mimetype.Detect(content)
		return fmt.Sprintf("<BINARY FILE (%s), %d bytes>", detected.String(), len(content))
	}

	return strings.TrimRight(string(content), "\n")
}

// isText reports whether the detected MIME type descends from text/plain.
func isText(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	for mt := mimetype.Detect(content); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func sortedKeys(m map[string]*treekeep.Directory) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
