package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalog_PutGet(t *testing.T) {
	c := openTestCatalog(t)

	stored, err := c.Put(Entry{
		Path:        "/data/plate.unv",
		ModelName:   "plate",
		BlockCounts: map[string]int{"151": 1, "15": 1},
		Decoded:     2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.IndexedAt.IsZero())

	got, err := c.Get("/data/plate.unv")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "plate", got.ModelName)
	assert.Equal(t, map[string]int{"151": 1, "15": 1}, got.BlockCounts)
}

func TestCatalog_PutPreservesIDAndTimestamp(t *testing.T) {
	c := openTestCatalog(t)

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stored, err := c.Put(Entry{ID: "fixed-id", Path: "/data/a.unv", IndexedAt: when})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", stored.ID)
	assert.Equal(t, when, stored.IndexedAt)
}

func TestCatalog_PutReplacesExisting(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.Put(Entry{Path: "/data/a.unv", Decoded: 1})
	require.NoError(t, err)
	_, err = c.Put(Entry{Path: "/data/a.unv", Decoded: 5})
	require.NoError(t, err)

	got, err := c.Get("/data/a.unv")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Decoded)

	entries, err := c.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalog_PutWithoutPath(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.Put(Entry{ModelName: "nameless"})
	assert.Error(t, err)
}

func TestCatalog_GetMissing(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.Get("/data/absent.unv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_List(t *testing.T) {
	c := openTestCatalog(t)

	for _, path := range []string{"/data/c.unv", "/data/a.unv", "/data/b.unv"} {
		_, err := c.Put(Entry{Path: path})
		require.NoError(t, err)
	}

	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Pebble iterates keys in order, so entries come back sorted by path.
	assert.Equal(t, "/data/a.unv", entries[0].Path)
	assert.Equal(t, "/data/b.unv", entries[1].Path)
	assert.Equal(t, "/data/c.unv", entries[2].Path)
}

func TestCatalog_Delete(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.Put(Entry{Path: "/data/a.unv"})
	require.NoError(t, err)
	require.NoError(t, c.Delete("/data/a.unv"))

	_, err = c.Get("/data/a.unv")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unindexed path is not an error.
	assert.NoError(t, c.Delete("/data/never-indexed.unv"))
}

func TestCatalog_ReopenPersists(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir)
	require.NoError(t, err)
	_, err = c.Put(Entry{Path: "/data/a.unv", ModelName: "persisted"})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = Open(dir)
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Get("/data/a.unv")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.ModelName)
}
