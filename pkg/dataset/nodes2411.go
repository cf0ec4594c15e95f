package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// NodeDP is one node of dataset 2411: a 4I10 identifier line followed by a
// 3D25.16 coordinate line.
type NodeDP struct {
	Label    int
	ExportCS int // export coordinate system
	DispCS   int // displacement coordinate system
	Color    int
	X, Y, Z  float64
}

// NodesDP is dataset 2411, double precision nodes.
type NodesDP struct {
	Nodes []NodeDP
}

// Tag implements registry.Record.
func (NodesDP) Tag() string { return "2411" }

func init() {
	registry.MustRegister("2411", parseNodesDP, writeNodesDP)
}

func parseNodesDP(b block.Block) (registry.Record, error) {
	body := b.Lines[1:]
	if len(body)%2 != 0 {
		return nil, fmt.Errorf("%w: dataset 2411 needs identifier/coordinate line pairs, got %d lines", ErrTruncatedDataset, len(body))
	}

	rec := NodesDP{}
	for i := 0; i < len(body); i += 2 {
		idLine, coordLine := body[i], body[i+1]
		var n NodeDP
		var err error
		if n.Label, err = column.Int(idLine, 0, 10); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.ExportCS, err = column.Int(idLine, 10, 10); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.DispCS, err = column.Int(idLine, 20, 10); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.Color, err = column.Int(idLine, 30, 10); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.X, err = column.Float(coordLine, 0, 25); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.Y, err = column.Float(coordLine, 25, 25); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		if n.Z, err = column.Float(coordLine, 50, 25); err != nil {
			return nil, fmt.Errorf("node pair %d: %w", i/2, err)
		}
		rec.Nodes = append(rec.Nodes, n)
	}
	return rec, nil
}

func writeNodesDP(r registry.Record) ([]string, error) {
	rec, ok := r.(NodesDP)
	if !ok {
		return nil, fmt.Errorf("expected dataset.NodesDP, got %T", r)
	}

	lines := make([]string, 0, 2*len(rec.Nodes))
	for _, n := range rec.Nodes {
		lines = append(lines,
			column.FormatInt(n.Label, 10)+
				column.FormatInt(n.ExportCS, 10)+
				column.FormatInt(n.DispCS, 10)+
				column.FormatInt(n.Color, 10))
		lines = append(lines,
			column.DoubleExp(n.X, 25, 16)+
				column.DoubleExp(n.Y, 25, 16)+
				column.DoubleExp(n.Z, 25, 16))
	}
	return lines, nil
}
