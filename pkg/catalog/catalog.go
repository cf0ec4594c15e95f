// Package catalog maintains a pebble-backed index of scanned universal
// files, so lab archives can be browsed without re-decoding every file.
package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Errors
var (
	ErrNotFound = &CatalogError{"file not indexed"}
)

// CatalogError represents a catalog lookup failure.
type CatalogError struct {
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}

// Entry is the indexed summary of one scanned file.
type Entry struct {
	ID          string         `json:"id"`
	Path        string         `json:"path"`
	ModelName   string         `json:"model_name,omitempty"`
	BlockCounts map[string]int `json:"block_counts"`
	Decoded     int            `json:"decoded"`
	Skipped     int            `json:"skipped"`
	IndexedAt   time.Time      `json:"indexed_at"`
}

// Catalog is a pebble database of entries keyed by file path.
type Catalog struct {
	db *pebble.DB
}

// Open opens (creating if needed) the catalog database in dir.
func Open(dir string) (*Catalog, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

func entryKey(path string) []byte {
	return []byte("file:" + path)
}

// Put indexes an entry, assigning a ksuid ID and timestamp when absent.
// An existing entry for the same path is replaced.
func (c *Catalog) Put(e Entry) (Entry, error) {
	if e.Path == "" {
		return e, fmt.Errorf("entry has no path")
	}
	if e.ID == "" {
		e.ID = ksuid.New().String()
	}
	if e.IndexedAt.IsZero() {
		e.IndexedAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("failed to marshal catalog entry: %w", err)
	}
	if err := c.db.Set(entryKey(e.Path), data, pebble.Sync); err != nil {
		return e, fmt.Errorf("failed to store catalog entry: %w", err)
	}
	return e, nil
}

// Get returns the entry indexed for path.
func (c *Catalog) Get(path string) (Entry, error) {
	data, closer, err := c.db.Get(entryKey(path))
	if err == pebble.ErrNotFound {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read catalog entry: %w", err)
	}
	defer closer.Close()

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("failed to unmarshal catalog entry: %w", err)
	}
	return e, nil
}

// Delete removes the entry for path. Deleting an unindexed path is not an
// error.
func (c *Catalog) Delete(path string) error {
	return c.db.Delete(entryKey(path), pebble.Sync)
}

// List returns every indexed entry in path order.
func (c *Catalog) List() ([]Entry, error) {
	iter, err := c.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("file:"),
		UpperBound: []byte("file;"), // ';' is ':'+1
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var e Entry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog entry %q: %w", iter.Key(), err)
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("catalog iteration failed: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
