package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Node is one node of dataset 15: 4I10 identifiers followed by single
// precision coordinates (3E13.5), one node per line.
type Node struct {
	Label  int
	DefCS  int // definition coordinate system
	DispCS int // displacement coordinate system
	Color  int
	X, Y, Z float64
}

// Nodes is dataset 15.
type Nodes struct {
	Nodes []Node
}

// Tag implements registry.Record.
func (Nodes) Tag() string { return "15" }

func init() {
	registry.MustRegister("15", parseNodes, writeNodes)
}

func parseNodes(b block.Block) (registry.Record, error) {
	rec := Nodes{}
	for i := 1; i < len(b.Lines); i++ {
		line := b.Lines[i]
		var n Node
		var err error
		if n.Label, err = column.Int(line, 0, 10); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.DefCS, err = column.Int(line, 10, 10); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.DispCS, err = column.Int(line, 20, 10); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.Color, err = column.Int(line, 30, 10); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.X, err = column.Float(line, 40, 13); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.Y, err = column.Float(line, 53, 13); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		if n.Z, err = column.Float(line, 66, 13); err != nil {
			return nil, fmt.Errorf("node line %d: %w", i, err)
		}
		rec.Nodes = append(rec.Nodes, n)
	}
	return rec, nil
}

func writeNodes(r registry.Record) ([]string, error) {
	rec, ok := r.(Nodes)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Nodes, got %T", r)
	}

	lines := make([]string, 0, len(rec.Nodes))
	for _, n := range rec.Nodes {
		lines = append(lines,
			column.FormatInt(n.Label, 10)+
				column.FormatInt(n.DefCS, 10)+
				column.FormatInt(n.DispCS, 10)+
				column.FormatInt(n.Color, 10)+
				column.Exp(n.X, 13, 5)+
				column.Exp(n.Y, 13, 5)+
				column.Exp(n.Z, 13, 5))
	}
	return lines, nil
}
