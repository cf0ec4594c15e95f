package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// BeamOrientation is the extra 3I10 record carried by beam-family elements.
type BeamOrientation struct {
	Orientation int
	ForeEnd     int // fore-end cross-section number
	AftEnd      int // aft-end cross-section number
}

// Element is one element of dataset 2412: a 6I10 descriptor record, an
// optional beam orientation record, and the node labels at 8I10 with
// continuation lines.
type Element struct {
	Label        int
	FEDescriptor int
	PhysProp     int
	MatProp      int
	Color        int
	Beam         *BeamOrientation // nil unless FEDescriptor is a beam family
	Nodes        []int
}

// Elements is dataset 2412.
type Elements struct {
	Elements []Element
}

// Tag implements registry.Record.
func (Elements) Tag() string { return "2412" }

// beamDescriptors are the FE descriptor ids whose elements carry the extra
// orientation record: rod (11) and the beam family (21-24).
var beamDescriptors = map[int]bool{
	11: true,
	21: true,
	22: true,
	23: true,
	24: true,
}

func init() {
	registry.MustRegister("2412", parseElements, writeElements)
}

func parseElements(b block.Block) (registry.Record, error) {
	rec := Elements{}
	lines := b.Lines
	cur := 1
	for cur < len(lines) {
		desc, err := readInts(lines, &cur, 10, 6, 6)
		if err != nil {
			return nil, fmt.Errorf("element %d descriptor: %w", len(rec.Elements), err)
		}

		e := Element{
			Label:        desc[0],
			FEDescriptor: desc[1],
			PhysProp:     desc[2],
			MatProp:      desc[3],
			Color:        desc[4],
		}
		numNodes := desc[5]
		if numNodes <= 0 {
			return nil, fmt.Errorf("element %d declares %d nodes", e.Label, numNodes)
		}

		if beamDescriptors[e.FEDescriptor] {
			beam, err := readInts(lines, &cur, 10, 3, 3)
			if err != nil {
				return nil, fmt.Errorf("element %d beam record: %w", e.Label, err)
			}
			e.Beam = &BeamOrientation{Orientation: beam[0], ForeEnd: beam[1], AftEnd: beam[2]}
		}

		if e.Nodes, err = readInts(lines, &cur, 10, 8, numNodes); err != nil {
			return nil, fmt.Errorf("element %d nodes: %w", e.Label, err)
		}

		rec.Elements = append(rec.Elements, e)
	}
	return rec, nil
}

func writeElements(r registry.Record) ([]string, error) {
	rec, ok := r.(Elements)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Elements, got %T", r)
	}

	var lines []string
	for _, e := range rec.Elements {
		if len(e.Nodes) == 0 {
			return nil, fmt.Errorf("element %d has no nodes", e.Label)
		}
		lines = append(lines,
			column.FormatInt(e.Label, 10)+
				column.FormatInt(e.FEDescriptor, 10)+
				column.FormatInt(e.PhysProp, 10)+
				column.FormatInt(e.MatProp, 10)+
				column.FormatInt(e.Color, 10)+
				column.FormatInt(len(e.Nodes), 10))
		if e.Beam != nil {
			lines = append(lines,
				column.FormatInt(e.Beam.Orientation, 10)+
					column.FormatInt(e.Beam.ForeEnd, 10)+
					column.FormatInt(e.Beam.AftEnd, 10))
		}
		lines = append(lines, writeInts(e.Nodes, 10, 8)...)
	}
	return lines, nil
}
