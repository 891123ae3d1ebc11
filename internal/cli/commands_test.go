package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// execute runs the root command with the given args against a store in a
// fresh temp directory and returns that directory.
func execute(t *testing.T, storeDir string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(args, "--store", storeDir))
	return rootCmd.Execute()
}

func readStructureDoc(t *testing.T, storeDir string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(storeDir, treekeep.StructureFileName+".json"))
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestAddDir_TopLevel(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))

	doc := readStructureDoc(t, storeDir)
	require.Contains(t, doc, "project")
}

func TestAddDir_Nested(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	require.NoError(t, execute(t, storeDir, "add-dir", "project/src"))

	doc := readStructureDoc(t, storeDir)
	project := doc["project"].(map[string]interface{})
	assert.Contains(t, project["directories"].(map[string]interface{}), "src")
}

func TestAddDir_MissingParent(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	err := execute(t, storeDir, "add-dir", "project/missing/deep")
	require.ErrorIs(t, err, treekeep.ErrPathNotFound)
}

func TestAddFile_AndRemove(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	require.NoError(t, execute(t, storeDir, "add-file", "project/env.py"))

	doc := readStructureDoc(t, storeDir)
	files := doc["project"].(map[string]interface{})["files"].([]interface{})
	require.Len(t, files, 1)
	assert.Equal(t, map[string]interface{}{"name": "env.py"}, files[0])

	require.NoError(t, execute(t, storeDir, "rm-file", "project/env.py"))
	doc = readStructureDoc(t, storeDir)
	assert.Empty(t, doc["project"].(map[string]interface{})["files"])
}

func TestAddFile_TopLevelRejected(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	err := execute(t, storeDir, "add-file", "orphan.py")
	require.Error(t, err)
}

func TestRmDir_TopLevel(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	require.NoError(t, execute(t, storeDir, "rm-dir", "project"))

	assert.Empty(t, readStructureDoc(t, storeDir))
}

func TestRmDir_Absent(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	err := execute(t, storeDir, "rm-dir", "ghost")
	require.ErrorIs(t, err, treekeep.ErrNotFound)
}

func TestShow_RunsCleanly(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	require.NoError(t, execute(t, storeDir, "show"))
}

func TestReport_WritesMarkdown(t *testing.T) {
	storeDir := filepath.Join(t.TempDir(), "json_files")
	contentRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(contentRoot, "project"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contentRoot, "project", "env.py"), []byte("import os\n"), 0o644))

	require.NoError(t, execute(t, storeDir, "add-dir", "project"))
	require.NoError(t, execute(t, storeDir, "add-file", "project/env.py"))

	out := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, execute(t, storeDir, "report", "-o", out, "--content-root", contentRoot))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# File Report")
	assert.Contains(t, string(data), "import os")
}
