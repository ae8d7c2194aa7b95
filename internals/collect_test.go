package internals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFoldersCountsEntries(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0o644))

	records, err := CollectFolders(root, TraversalOptions{RelativeTo: root}, 1, false, WalkHooks{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byPath := make(map[string]FolderRecord)
	for _, r := range records {
		byPath[r.Path] = r
	}

	rootRec, ok := byPath["."]
	require.True(t, ok, "expected a record for the root folder itself")
	assert.Equal(t, 2, rootRec.NumEntries)
	assert.Equal(t, 2, rootRec.NumReadable)

	subRec, ok := byPath["sub"]
	require.True(t, ok, "expected a record for sub")
	assert.Equal(t, 1, subRec.NumEntries)
	assert.Equal(t, 1, subRec.NumReadable)
}

func TestCollectFoldersFastModeSkipsReadableCount(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))

	records, err := CollectFolders(root, TraversalOptions{RelativeTo: root}, 1, true, WalkHooks{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, -1, records[0].NumReadable)
	assert.Equal(t, 1, records[0].NumEntries)
}

func TestCollectFoldersStartSerial(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))

	records, err := CollectFolders(root, TraversalOptions{RelativeTo: root}, 42, true, WalkHooks{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 42, records[0].Serial)
	assert.Equal(t, 43, records[1].Serial)
}

func TestCollectFoldersExcludesSubtree(t *testing.T) {
	root := t.TempDir()
	excluded := filepath.Join(root, "skip")
	require.NoError(t, os.MkdirAll(filepath.Join(excluded, "nested"), 0o755))

	records, err := CollectFolders(root, TraversalOptions{
		RelativeTo: root,
		Excludes:   []string{excluded},
	}, 1, true, WalkHooks{})
	require.NoError(t, err)
	for _, r := range records {
		assert.NotContains(t, r.Path, "skip")
	}
}

func TestFolderRecordLineFormat(t *testing.T) {
	r := FolderRecord{Serial: 3, Path: "a/b", NumEntries: 5, NumReadable: 4}
	assert.Equal(t, "3\ta/b\t5\t4", r.Line())
}
