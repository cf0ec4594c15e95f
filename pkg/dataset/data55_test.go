package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodalData() NodalData {
	return NodalData{
		ID1: "NONE", ID2: "NONE", ID3: "NONE", ID4: "NONE", ID5: "NONE",
		ModelType:          1,
		AnalysisType:       2,
		DataCharacteristic: 2,
		SpecificDataType:   8,
		DataType:           DataTypeReal,
		ValuesPerNode:      3,
		SpecificInts:       []int{2, 4, 0, 1, 0, 0, 0, 1},
		SpecificReals:      []float64{12.5, 0.25},
		Nodes: []NodalValues{
			{Node: 1, Values: []float64{0.5, -1.25, 2}},
			{Node: 2, Values: []float64{1.5, 0, -3.75}},
		},
	}
}

func TestNodalDataRoundTrip_Real(t *testing.T) {
	d := sampleNodalData()

	lines, err := writeNodalData(d)
	require.NoError(t, err)

	again, err := parseNodalData(rebuildBlock("    55", lines))
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestNodalDataRoundTrip_Complex(t *testing.T) {
	d := sampleNodalData()
	d.DataType = DataTypeComplex
	// Complex data carries re/im pairs, twice ValuesPerNode per node.
	d.Nodes = []NodalValues{
		{Node: 1, Values: []float64{0.5, -0.5, 1.25, 0, 2, -2}},
		{Node: 7, Values: []float64{0, 0, 1, 1, -1, -1}},
	}

	lines, err := writeNodalData(d)
	require.NoError(t, err)

	again, err := parseNodalData(rebuildBlock("    55", lines))
	require.NoError(t, err)
	parsed := again.(NodalData)
	assert.True(t, parsed.Complex())
	assert.Equal(t, d, again)
}

func TestParseNodalData_SpecificCountsLeadIntegerRecord(t *testing.T) {
	d := sampleNodalData()
	lines, err := writeNodalData(d)
	require.NoError(t, err)

	parsed, err := parseNodalData(rebuildBlock("    55", lines))
	require.NoError(t, err)
	got := parsed.(NodalData)
	assert.Equal(t, d.SpecificInts, got.SpecificInts)
	assert.Len(t, got.SpecificReals, len(d.SpecificReals))
}

func TestWriteNodalData_ValueCountMismatch(t *testing.T) {
	d := sampleNodalData()
	d.Nodes[0].Values = []float64{1} // declares 3 per node
	_, err := writeNodalData(d)
	require.Error(t, err)
	assert.ErrorContains(t, err, "values")
}

func TestParseNodalData_TruncatedNodeValues(t *testing.T) {
	d := sampleNodalData()
	lines, err := writeNodalData(d)
	require.NoError(t, err)

	// Drop the last node's value line, leaving a dangling label.
	_, err = parseNodalData(rebuildBlock("    55", lines[:len(lines)-1]))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedDataset)
}
