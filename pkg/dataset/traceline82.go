package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Traceline is dataset 82, a display trace through node labels. A label of
// 0 lifts the pen between segments.
type Traceline struct {
	ID             int
	Color          int
	Identification string
	Nodes          []int
}

// Tag implements registry.Record.
func (Traceline) Tag() string { return "82" }

func init() {
	registry.MustRegister("82", parseTraceline, writeTraceline)
}

func parseTraceline(b block.Block) (registry.Record, error) {
	t := Traceline{}

	l1 := lineAt(b, 1)
	var err error
	if t.ID, err = column.Int(l1, 0, 10); err != nil {
		return nil, fmt.Errorf("traceline id: %w", err)
	}
	count, err := column.Int(l1, 10, 10)
	if err != nil {
		return nil, fmt.Errorf("traceline node count: %w", err)
	}
	if t.Color, err = column.Int(l1, 20, 10); err != nil {
		return nil, fmt.Errorf("traceline color: %w", err)
	}

	t.Identification = lineAt(b, 2)

	cur := 3
	if t.Nodes, err = readInts(b.Lines, &cur, 10, 8, count); err != nil {
		return nil, fmt.Errorf("traceline %d: %w", t.ID, err)
	}
	if len(t.Nodes) != count {
		return nil, fmt.Errorf("traceline %d: declared %d nodes, read %d", t.ID, count, len(t.Nodes))
	}

	return t, nil
}

func writeTraceline(r registry.Record) ([]string, error) {
	t, ok := r.(Traceline)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Traceline, got %T", r)
	}

	lines := []string{
		column.FormatInt(t.ID, 10) + column.FormatInt(len(t.Nodes), 10) + column.FormatInt(t.Color, 10),
		t.Identification,
	}
	lines = append(lines, writeInts(t.Nodes, 10, 8)...)
	return lines, nil
}
