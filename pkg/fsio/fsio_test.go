package fsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.unv")
	lines := []string{"    -1", "   151", "model.unv", "    -1"}

	require.NoError(t, SaveLines(path, lines))

	data, err := LoadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, "    -1\n   151\nmodel.unv\n    -1\n", string(data))
}

func TestSaveLoad_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.unv.gz")
	lines := []string{"    -1", "   164", "body", "    -1"}

	require.NoError(t, SaveLines(path, lines))

	// On disk it must actually be gzip.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, byte(0x1f), raw[0])
	assert.Equal(t, byte(0x8b), raw[1])

	data, err := LoadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, "    -1\n   164\nbody\n    -1\n", string(data))
}

func TestSaveLoad_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.unv.zst")
	lines := []string{"    -1", "    15", "body", "    -1"}

	require.NoError(t, SaveLines(path, lines))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 4)
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, raw[:4])

	data, err := LoadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, "    -1\n    15\nbody\n    -1\n", string(data))
}

func TestLoadBytes_DetectsCompressionWithoutExtension(t *testing.T) {
	// Compression detection is by magic bytes, so a renamed archive still
	// loads.
	dir := t.TempDir()
	gz := filepath.Join(dir, "archive.gz")
	require.NoError(t, SaveLines(gz, []string{"hello"}))

	renamed := filepath.Join(dir, "archive.unv")
	require.NoError(t, os.Rename(gz, renamed))

	data, err := LoadBytes(renamed)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestLoadBytes_MissingFile(t *testing.T) {
	_, err := LoadBytes(filepath.Join(t.TempDir(), "nope.unv"))
	assert.Error(t, err)
}
