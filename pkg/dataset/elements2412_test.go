package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modalkit/uffio/pkg/block"
)

func TestParseElements(t *testing.T) {
	b := block.Block{Lines: []string{
		"  2412",
		"         1        44         1         1         7         4",
		"         1         2         3         4",
	}}

	rec, err := parseElements(b)
	require.NoError(t, err)

	els := rec.(Elements)
	require.Len(t, els.Elements, 1)
	e := els.Elements[0]
	assert.Equal(t, 1, e.Label)
	assert.Equal(t, 44, e.FEDescriptor)
	assert.Equal(t, []int{1, 2, 3, 4}, e.Nodes)
	assert.Nil(t, e.Beam)
}

func TestParseElements_BeamRecord(t *testing.T) {
	b := block.Block{Lines: []string{
		"  2412",
		"         1        21         1         1         7         2",
		"         0         1         1",
		"         1         2",
	}}

	rec, err := parseElements(b)
	require.NoError(t, err)

	e := rec.(Elements).Elements[0]
	require.NotNil(t, e.Beam)
	assert.Equal(t, BeamOrientation{Orientation: 0, ForeEnd: 1, AftEnd: 1}, *e.Beam)
	assert.Equal(t, []int{1, 2}, e.Nodes)
}

func TestElementsRoundTrip(t *testing.T) {
	rec := Elements{Elements: []Element{
		{Label: 1, FEDescriptor: 44, PhysProp: 1, MatProp: 1, Color: 7, Nodes: []int{1, 2, 3, 4}},
		{Label: 2, FEDescriptor: 11, PhysProp: 1, MatProp: 1, Color: 7,
			Beam:  &BeamOrientation{Orientation: 1, ForeEnd: 2, AftEnd: 3},
			Nodes: []int{4, 5}},
		// Ten nodes force a continuation line at eight fields per line.
		{Label: 3, FEDescriptor: 115, PhysProp: 2, MatProp: 2, Color: 8,
			Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}}

	lines, err := writeElements(rec)
	require.NoError(t, err)

	again, err := parseElements(rebuildBlock("  2412", lines))
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestParseElements_TruncatedNodes(t *testing.T) {
	b := block.Block{Lines: []string{
		"  2412",
		"         1        44         1         1         7         4",
		"         1         2",
	}}

	_, err := parseElements(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedDataset)
}

func TestWriteElements_NoNodes(t *testing.T) {
	_, err := writeElements(Elements{Elements: []Element{{Label: 9}}})
	assert.Error(t, err)
}
