package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modalkit/uffio/pkg/block"
)

func TestParseNodes(t *testing.T) {
	b := block.Block{Lines: []string{
		"    15",
		"         1         0         0        11  0.00000E+00  0.00000E+00  0.00000E+00",
		"         2         0         0        11  1.50000E+00  0.00000E+00 -2.25000E+00",
	}}

	rec, err := parseNodes(b)
	require.NoError(t, err)

	nodes := rec.(Nodes)
	require.Len(t, nodes.Nodes, 2)
	assert.Equal(t, Node{Label: 1, Color: 11}, nodes.Nodes[0])
	assert.Equal(t, Node{Label: 2, Color: 11, X: 1.5, Z: -2.25}, nodes.Nodes[1])
}

func TestNodesRoundTrip(t *testing.T) {
	rec := Nodes{Nodes: []Node{
		{Label: 1, DefCS: 1, DispCS: 1, Color: 7, X: 0.5, Y: -1.25, Z: 100},
		{Label: 2, DefCS: 1, DispCS: 1, Color: 7, X: 3.125, Y: 0, Z: -0.5},
		{Label: 10, DefCS: 2, DispCS: 2, Color: 8, X: 1e6, Y: -1e-6, Z: 0},
	}}

	lines, err := writeNodes(rec)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	again, err := parseNodes(rebuildBlock("    15", lines))
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestParseNodes_MalformedCoordinate(t *testing.T) {
	b := block.Block{Lines: []string{
		"    15",
		"         1         0         0         0  not-a-float  0.00000E+00  0.00000E+00",
	}}
	_, err := parseNodes(b)
	assert.Error(t, err)
}

func TestParseNodesDP(t *testing.T) {
	b := block.Block{Lines: []string{
		"  2411",
		"         1         1         1        11",
		"   5.0000000000000000D-01  -1.2500000000000000D+00   0.0000000000000000D+00",
	}}

	rec, err := parseNodesDP(b)
	require.NoError(t, err)

	nodes := rec.(NodesDP)
	require.Len(t, nodes.Nodes, 1)
	assert.Equal(t, NodeDP{Label: 1, ExportCS: 1, DispCS: 1, Color: 11, X: 0.5, Y: -1.25}, nodes.Nodes[0])
}

func TestNodesDPRoundTrip(t *testing.T) {
	rec := NodesDP{Nodes: []NodeDP{
		{Label: 1, ExportCS: 1, DispCS: 1, Color: 11, X: 0.123456789, Y: -98765.4321, Z: 1e-12},
		{Label: 2, ExportCS: 1, DispCS: 1, Color: 11, X: 0, Y: 2.5, Z: -3.75},
	}}

	lines, err := writeNodesDP(rec)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	again, err := parseNodesDP(rebuildBlock("  2411", lines))
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestParseNodesDP_OddLineCount(t *testing.T) {
	b := block.Block{Lines: []string{
		"  2411",
		"         1         1         1        11",
	}}
	_, err := parseNodesDP(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedDataset)
}
