//go:build fuzz
// +build fuzz

package block

import (
	"testing"
)

// FuzzScanner checks that arbitrary byte buffers never crash the scanner
// and that every emitted block satisfies its invariants.
func FuzzScanner(f *testing.F) {
	// Seed corpus
	f.Add([]byte(""))
	f.Add([]byte("    -1\n   151\nmodel.unv\n    -1\n"))
	f.Add([]byte("    -1\n    -1\n"))
	f.Add([]byte("    -1\n    58b     1     2\nh\nh\nh\nh\nh\nh\nh\nh\nh\nh\nh\n\x00\x01\n    -1\n"))
	f.Add([]byte("no sentinel anywhere"))
	f.Add([]byte{0x00, 0xFF, '\n', '-', '1', '\n'})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			t.Skip("Input too large for fuzz test")
		}

		blocks, err := ScanAll(data)
		if err != nil && err != ErrTruncatedPayload {
			t.Fatalf("ScanAll returned unexpected error: %v", err)
		}

		for i, b := range blocks {
			if len(b.Lines) == 0 {
				t.Fatalf("block %d has no lines", i)
			}
			if b.Index != i {
				t.Fatalf("block index mismatch: got %d, want %d", b.Index, i)
			}
		}
	})
}
