package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/treekeep/internal/logging"
	"github.com/vvka-141/treekeep/internal/store"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "json_files"), logging.NewNullLogger())
	require.NoError(t, err)
	m, err := New(st, logging.NewNullLogger())
	require.NoError(t, err)
	return m, st
}

// readDocument decodes the persisted structure document straight off disk,
// bypassing the model, so tests observe exactly what a later process would.
func readDocument(t *testing.T, st *store.Store) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(st.Dir(), treekeep.StructureFileName+".json"))
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestNew_InitializesAndPersistsEmptyStructure(t *testing.T) {
	m, st := newTestManager(t)

	require.NotNil(t, m.Structure())
	assert.Empty(t, m.Structure().ListDirectories())

	// The empty structure must already be on disk.
	assert.Equal(t, map[string]interface{}{}, readDocument(t, st))
}

func TestNew_LoadsExistingStructure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "json_files")
	st, err := store.New(dir, logging.NewNullLogger())
	require.NoError(t, err)

	first, err := New(st, logging.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, first.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, first.AddFileAt("root", treekeep.NewFile("env.py")))

	// A second manager over the same store sees the persisted state.
	second, err := New(st, logging.NewNullLogger())
	require.NoError(t, err)
	root := second.Structure().FindDirectory("root")
	require.NotNil(t, root)
	assert.NotNil(t, root.FindFile("env.py"))
}

func TestAddFileAt_PersistsUnderNestedDirectory(t *testing.T) {
	m, st := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, m.AddDirectoryAt("root", treekeep.NewDirectory("sub")))

	require.NoError(t, m.AddFileAt("root/sub", treekeep.NewFile("x.py")))

	doc := readDocument(t, st)
	root := doc["root"].(map[string]interface{})
	sub := root["directories"].(map[string]interface{})["sub"].(map[string]interface{})
	files := sub["files"].([]interface{})
	require.Len(t, files, 1)
	assert.Equal(t, map[string]interface{}{"name": "x.py"}, files[0])
}

func TestAddDirectoryAt_UnresolvablePathIsNoOp(t *testing.T) {
	m, st := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	before := readDocument(t, st)

	err := m.AddDirectoryAt("root/missing", treekeep.NewDirectory("new"))
	require.ErrorIs(t, err, treekeep.ErrPathNotFound)

	// No save happened; the document on disk is unchanged.
	assert.Equal(t, before, readDocument(t, st))
}

func TestAddFileAt_DuplicateDoesNotSave(t *testing.T) {
	m, st := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, m.AddFileAt("root", treekeep.NewFile("a.py")))
	before := readDocument(t, st)

	err := m.AddFileAt("root", treekeep.NewFile("a.py"))
	require.ErrorIs(t, err, treekeep.ErrDuplicateName)
	assert.Equal(t, before, readDocument(t, st))
}

func TestDeleteFileAt(t *testing.T) {
	m, st := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, m.AddFileAt("root", treekeep.NewFile("a.py")))

	require.NoError(t, m.DeleteFileAt("root", "a.py"))

	doc := readDocument(t, st)
	root := doc["root"].(map[string]interface{})
	assert.Empty(t, root["files"])
}

func TestDeleteFileAt_AbsentFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))

	err := m.DeleteFileAt("root", "ghost.py")
	require.ErrorIs(t, err, treekeep.ErrNotFound)
}

func TestDeleteDirectoryAt_CascadesSubtree(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, m.AddDirectoryAt("root", treekeep.NewDirectory("sub")))
	require.NoError(t, m.AddFileAt("root/sub", treekeep.NewFile("deep.py")))

	require.NoError(t, m.DeleteDirectoryAt("root", "sub"))

	assert.Nil(t, m.Structure().ResolvePath("root/sub"))
}

func TestDeleteTopLevel(t *testing.T) {
	m, st := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))

	require.NoError(t, m.DeleteTopLevel("root"))

	assert.Equal(t, map[string]interface{}{}, readDocument(t, st))
	err := m.DeleteTopLevel("root")
	require.ErrorIs(t, err, treekeep.ErrNotFound)
}

func TestRender_Idempotent(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddTopLevel(treekeep.NewDirectory("root")))
	require.NoError(t, m.AddFileAt("root", treekeep.NewFile("env.py")))

	first, err := m.Render()
	require.NoError(t, err)
	second, err := m.Render()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "env.py")
}
