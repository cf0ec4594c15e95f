// Package fsio is the file-system glue for the codec: whole-file loading
// with transparent decompression, and line-sequence saving with compression
// selected by extension. Lab archives routinely gzip or zstd measurement
// exports, so both are handled here rather than in every caller.
package fsio

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// LoadBytes reads the whole file at path. Gzip and zstd content is detected
// by magic bytes and decompressed transparently, regardless of extension.
func LoadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream in %s: %w", path, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return out, nil

	case bytes.HasPrefix(data, zstdMagic):
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream in %s: %w", path, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return out, nil
	}

	return data, nil
}

// SaveLines writes lines to path joined by newlines, with a trailing
// newline. A .gz or .zst extension selects the matching compression.
func SaveLines(path string, lines []string) error {
	payload := []byte(strings.Join(lines, "\n") + "\n")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream for %s: %w", path, err)
		}
		payload = buf.Bytes()

	case ".zst":
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer for %s: %w", path, err)
		}
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finish zstd stream for %s: %w", path, err)
		}
		payload = buf.Bytes()
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
