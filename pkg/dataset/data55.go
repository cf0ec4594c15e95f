package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Data type codes for dataset 55 and 58 value layouts.
const (
	DataTypeReal    = 2
	DataTypeComplex = 5
)

// NodalValues holds one node's values within dataset 55. Complex data is
// stored as re/im pairs, so len(Values) is ValuesPerNode or twice that.
type NodalValues struct {
	Node   int
	Values []float64
}

// NodalData is dataset 55, data at nodes. The analysis-specific records are
// kept generic: SpecificInts and SpecificReals carry whatever the analysis
// type defined, without interpreting them here.
type NodalData struct {
	ID1, ID2, ID3, ID4, ID5 string

	ModelType          int
	AnalysisType       int
	DataCharacteristic int
	SpecificDataType   int
	DataType           int // DataTypeReal or DataTypeComplex
	ValuesPerNode      int

	SpecificInts  []int
	SpecificReals []float64

	Nodes []NodalValues
}

// Tag implements registry.Record.
func (NodalData) Tag() string { return "55" }

// Complex reports whether the per-node values are re/im pairs.
func (d NodalData) Complex() bool { return d.DataType == DataTypeComplex }

func init() {
	registry.MustRegister("55", parseNodalData, writeNodalData)
}

func parseNodalData(b block.Block) (registry.Record, error) {
	d := NodalData{
		ID1: lineAt(b, 1),
		ID2: lineAt(b, 2),
		ID3: lineAt(b, 3),
		ID4: lineAt(b, 4),
		ID5: lineAt(b, 5),
	}

	cur := 6
	defs, err := readInts(b.Lines, &cur, 10, 6, 6)
	if err != nil {
		return nil, fmt.Errorf("nodal data definition: %w", err)
	}
	d.ModelType = defs[0]
	d.AnalysisType = defs[1]
	d.DataCharacteristic = defs[2]
	d.SpecificDataType = defs[3]
	d.DataType = defs[4]
	d.ValuesPerNode = defs[5]

	// The counts lead the analysis-specific integer record: field 1 is the
	// number of integers, field 2 the number of reals, and the integers
	// themselves start at field 3, continuing at 8 per line.
	nint, err := column.Int(lineAt(b, cur), 0, 10)
	if err != nil {
		return nil, fmt.Errorf("nodal data integer count: %w", err)
	}
	all, err := readInts(b.Lines, &cur, 10, 8, nint+2)
	if err != nil {
		return nil, fmt.Errorf("nodal data specific integers: %w", err)
	}
	nrval := all[1]
	d.SpecificInts = all[2:]

	if d.SpecificReals, err = readFloats(b.Lines, &cur, repeatWidths(13, 6), nrval); err != nil {
		return nil, fmt.Errorf("nodal data specific reals: %w", err)
	}

	perNode := d.ValuesPerNode
	if d.Complex() {
		perNode *= 2
	}
	for cur < len(b.Lines) {
		label, err := column.Int(b.Lines[cur], 0, 10)
		if err != nil {
			return nil, fmt.Errorf("nodal data node label: %w", err)
		}
		cur++
		values, err := readFloats(b.Lines, &cur, repeatWidths(13, 6), perNode)
		if err != nil {
			return nil, fmt.Errorf("nodal data node %d: %w", label, err)
		}
		d.Nodes = append(d.Nodes, NodalValues{Node: label, Values: values})
	}

	return d, nil
}

func writeNodalData(r registry.Record) ([]string, error) {
	d, ok := r.(NodalData)
	if !ok {
		return nil, fmt.Errorf("expected dataset.NodalData, got %T", r)
	}

	perNode := d.ValuesPerNode
	if d.Complex() {
		perNode *= 2
	}

	lines := []string{
		d.ID1, d.ID2, d.ID3, d.ID4, d.ID5,
		column.FormatInt(d.ModelType, 10) +
			column.FormatInt(d.AnalysisType, 10) +
			column.FormatInt(d.DataCharacteristic, 10) +
			column.FormatInt(d.SpecificDataType, 10) +
			column.FormatInt(d.DataType, 10) +
			column.FormatInt(d.ValuesPerNode, 10),
	}

	counts := append([]int{len(d.SpecificInts), len(d.SpecificReals)}, d.SpecificInts...)
	lines = append(lines, writeInts(counts, 10, 8)...)
	lines = append(lines, writeFloats(d.SpecificReals, repeatWidths(13, 6))...)

	for _, n := range d.Nodes {
		if len(n.Values) != perNode {
			return nil, fmt.Errorf("node %d carries %d values, dataset declares %d", n.Node, len(n.Values), perNode)
		}
		lines = append(lines, column.FormatInt(n.Node, 10))
		lines = append(lines, writeFloats(n.Values, repeatWidths(13, 6))...)
	}

	return lines, nil
}
