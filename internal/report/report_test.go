package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/treekeep/internal/files/filesystem"
	"github.com/vvka-141/treekeep/internal/logging"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

func buildStructure(t *testing.T) *treekeep.Structure {
	t.Helper()
	root := treekeep.NewDirectory("project")
	require.NoError(t, root.AddFile(treekeep.NewFile("env.py")))

	sub := treekeep.NewDirectory("tests")
	require.NoError(t, sub.AddFile(treekeep.NewFile("test_env.py")))
	require.NoError(t, root.AddDirectory(sub))

	s := treekeep.NewStructure()
	require.NoError(t, s.AddDirectory(root))
	return s
}

func TestGenerate_EmptyStructure(t *testing.T) {
	g := NewGenerator(filesystem.NewMemoryFileSystem(), logging.NewNullLogger())

	out := g.Generate(treekeep.NewStructure(), "")

	assert.Contains(t, out, "# File Report")
	assert.Contains(t, out, "*(No directories found in the catalog.)*")
}

func TestGenerate_InlinesFileContents(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("project/env.py", []byte("import os\n"))
	mfs.AddFile("project/tests/test_env.py", []byte("def test_env(): pass\n"))
	g := NewGenerator(mfs, logging.NewNullLogger())

	out := g.Generate(buildStructure(t), "")

	assert.Contains(t, out, "## Directory: `project`")
	assert.Contains(t, out, "### `project/env.py`")
	assert.Contains(t, out, "import os")
	assert.Contains(t, out, "### `project/tests/test_env.py`")
	assert.Contains(t, out, "def test_env(): pass")
}

func TestGenerate_MissingFilePlaceholder(t *testing.T) {
	// Catalog tracks two files; only one exists on disk.
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("project/env.py", []byte("import os\n"))
	g := NewGenerator(mfs, logging.NewNullLogger())

	out := g.Generate(buildStructure(t), "")

	assert.Contains(t, out, "import os")
	assert.Contains(t, out, "<FILE NOT FOUND ON DISK>")
}

func TestGenerate_ContentRootPrependedForReads(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/srv/checkout/project/env.py", []byte("import os\n"))
	mfs.AddFile("/srv/checkout/project/tests/test_env.py", []byte("pass\n"))
	g := NewGenerator(mfs, logging.NewNullLogger())

	out := g.Generate(buildStructure(t), "/srv/checkout")

	// Report shows catalog paths, not disk paths.
	assert.Contains(t, out, "### `project/env.py`")
	assert.NotContains(t, out, "/srv/checkout")
	assert.Contains(t, out, "import os")
}

func TestGenerate_BinaryContentPlaceholder(t *testing.T) {
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	root := treekeep.NewDirectory("assets")
	require.NoError(t, root.AddFile(treekeep.NewFile("logo.png")))
	s := treekeep.NewStructure()
	require.NoError(t, s.AddDirectory(root))

	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("assets/logo.png", png)
	g := NewGenerator(mfs, logging.NewNullLogger())

	out := g.Generate(s, "")

	assert.Contains(t, out, "<BINARY FILE (image/png)")
	assert.NotContains(t, out, string(png[:8]))
}

func TestGenerate_FilesKeepInsertionOrder(t *testing.T) {
	root := treekeep.NewDirectory("project")
	require.NoError(t, root.AddFile(treekeep.NewFile("zzz.py")))
	require.NoError(t, root.AddFile(treekeep.NewFile("aaa.py")))
	s := treekeep.NewStructure()
	require.NoError(t, s.AddDirectory(root))

	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("project/zzz.py", []byte("z\n"))
	mfs.AddFile("project/aaa.py", []byte("a\n"))
	g := NewGenerator(mfs, logging.NewNullLogger())

	out := g.Generate(s, "")

	assert.Less(t, strings.Index(out, "zzz.py"), strings.Index(out, "aaa.py"))
}
