package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
)

// binaryBlock turns writeFunctionBinary output into the block the scanner
// would deliver: twelve header lines plus the raw payload bytes.
func binaryBlock(t *testing.T, out []string) block.Block {
	t.Helper()
	require.Len(t, out, 13, "ident line, eleven header lines, payload")
	lines := make([]string, 0, 12)
	for _, l := range out[:12] {
		lines = append(lines, trimTrailing(l))
	}
	return block.Block{Lines: lines, Payload: []byte(out[12])}
}

func TestFunctionBinaryRoundTrip_SingleLittleEndian(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateRealSingle
	f.EvenSpacing = true
	f.XStep = 0.5
	f.Binary = true
	f.ByteOrder = ByteOrderLittleEndian
	f.FPFormat = 2
	// Values must survive the float32 narrowing of the single layout.
	f.Data = []float64{1.5, -0.25, 1024.5, 0}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	rec, err := parseFunctionBinary(binaryBlock(t, out))
	require.NoError(t, err)
	assert.Equal(t, f, rec.(Function))
}

func TestFunctionBinaryRoundTrip_DoubleBigEndian(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateComplexDouble
	f.Binary = true
	f.ByteOrder = ByteOrderBigEndian
	f.FPFormat = 2
	f.X = []float64{0, 0.1}
	f.Data = []float64{0.123456789012345, -1, 3.14159265358979, 2}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	rec, err := parseFunctionBinary(binaryBlock(t, out))
	require.NoError(t, err)
	assert.Equal(t, f, rec.(Function))
}

func TestWriteFunctionBinary_IdentLine(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateRealSingle
	f.EvenSpacing = true
	f.Binary = true
	f.FPFormat = 2
	f.Data = []float64{1, 2, 3}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	ident := out[0]
	assert.True(t, strings.HasPrefix(ident, "    58b"))

	// ByteOrder 0 defaults to little endian on the wire.
	bo, err := column.Int(ident, 7, 6)
	require.NoError(t, err)
	assert.Equal(t, ByteOrderLittleEndian, bo)

	lineCount, err := column.Int(ident, 19, 12)
	require.NoError(t, err)
	assert.Equal(t, 11, lineCount)

	byteCount, err := column.Int(ident, 31, 12)
	require.NoError(t, err)
	assert.Equal(t, 3*4, byteCount)
	assert.Len(t, out[12], byteCount)
}

func TestParseFunctionBinary_PayloadTooShort(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateRealSingle
	f.EvenSpacing = true
	f.Binary = true
	f.ByteOrder = ByteOrderLittleEndian
	f.Data = []float64{1, 2, 3, 4}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	b := binaryBlock(t, out)
	b.Payload = b.Payload[:len(b.Payload)-1]
	_, err = parseFunctionBinary(b)
	require.Error(t, err)
	assert.ErrorContains(t, err, "payload too short")
}

func TestParseFunctionBinary_BadByteOrder(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateRealSingle
	f.EvenSpacing = true
	f.Binary = true
	f.ByteOrder = ByteOrderLittleEndian
	f.Data = []float64{1}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	b := binaryBlock(t, out)
	b.Lines[0] = "    58b     3     2          11           4     0     0     0     0"
	_, err = parseFunctionBinary(b)
	require.Error(t, err)
	assert.ErrorContains(t, err, "byte order")
}

func TestParseFunctionBinary_PayloadToleratesTrailingNewline(t *testing.T) {
	f := baseFunction()
	f.OrdinateType = OrdinateRealSingle
	f.EvenSpacing = true
	f.Binary = true
	f.ByteOrder = ByteOrderLittleEndian
	f.Data = []float64{1.5, 2.5}

	out, err := writeFunctionBinary(f)
	require.NoError(t, err)

	// A rescan of encoded output delivers the payload with the newline that
	// separated it from the closing sentinel.
	b := binaryBlock(t, out)
	b.Payload = append(b.Payload, '\n')
	rec, err := parseFunctionBinary(b)
	require.NoError(t, err)
	assert.Equal(t, f.Data, rec.(Function).Data)
}
