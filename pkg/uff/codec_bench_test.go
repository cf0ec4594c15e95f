//go:build bench
// +build bench

package uff

import (
	"strings"
	"testing"

	"github.com/modalkit/uffio/pkg/dataset"
	"github.com/modalkit/uffio/pkg/registry"
)

func benchInput(b *testing.B, nodes int) []byte {
	rec := dataset.Nodes{}
	for i := 0; i < nodes; i++ {
		rec.Nodes = append(rec.Nodes, dataset.Node{
			Label: i + 1, Color: 11,
			X: float64(i), Y: float64(i) * 0.5, Z: -float64(i),
		})
	}

	lines, err := EncodeAll([]registry.Record{rec})
	if err != nil {
		b.Fatal(err)
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

func BenchmarkDecodeAll(b *testing.B) {
	benchmarks := []struct {
		name  string
		nodes int
	}{
		{name: "small", nodes: 10},
		{name: "medium", nodes: 1000},
		{name: "large", nodes: 100000},
	}

	for _, bm := range benchmarks {
		data := benchInput(b, bm.nodes)
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := DecodeAll(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeAll(b *testing.B) {
	rec := dataset.Nodes{}
	for i := 0; i < 1000; i++ {
		rec.Nodes = append(rec.Nodes, dataset.Node{Label: i + 1, X: float64(i)})
	}
	records := []registry.Record{rec}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeAll(records); err != nil {
			b.Fatal(err)
		}
	}
}
