package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Byte order codes on the 58b identification line.
const (
	ByteOrderLittleEndian = 1
	ByteOrderBigEndian    = 2
)

// The identification line of a binary 58 block: I6 dataset number, A1
// variant letter, then I6 byte order, I6 floating point format, I12 ASCII
// line count, I12 byte count, and four I6 spare fields.
const (
	binIdentPrefix     = "    58b"
	binByteOrderStart  = 7
	binByteOrderWidth  = 6
	binFPFormatStart   = 13
	binFPFormatWidth   = 6
	binLineCountStart  = 19
	binLineCountWidth  = 12
	binByteCountStart  = 31
	binByteCountWidth  = 12
	binSpareFields     = 4
	binSpareFieldWidth = 6
)

func parseFunctionBinary(b block.Block) (registry.Record, error) {
	ident := b.FirstLine()

	byteOrder, err := column.Int(ident, binByteOrderStart, binByteOrderWidth)
	if err != nil {
		return nil, fmt.Errorf("binary function byte order: %w", err)
	}
	fpFormat, err := column.Int(ident, binFPFormatStart, binFPFormatWidth)
	if err != nil {
		return nil, fmt.Errorf("binary function fp format: %w", err)
	}

	f, numPts, err := parseFunctionHeader(b.Lines[1:])
	if err != nil {
		return nil, err
	}
	f.Binary = true
	f.ByteOrder = byteOrder
	f.FPFormat = fpFormat

	order, err := endianness(byteOrder)
	if err != nil {
		return nil, err
	}

	size := 4
	if f.DoublePrecision() {
		size = 8
	}
	total := numPts * valuesPerPoint(f)
	need := total * size
	if len(b.Payload) < need {
		return nil, fmt.Errorf("binary function payload too short: have %d bytes, need %d", len(b.Payload), need)
	}

	stream := make([]float64, total)
	for i := range stream {
		off := i * size
		if size == 8 {
			stream[i] = math.Float64frombits(order.Uint64(b.Payload[off:]))
		} else {
			stream[i] = float64(math.Float32frombits(order.Uint32(b.Payload[off:])))
		}
	}
	splitStream(&f, stream)
	return f, nil
}

func writeFunctionBinary(r registry.Record) ([]string, error) {
	f, ok := r.(Function)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Function, got %T", r)
	}
	if !f.EvenSpacing && len(f.X) != f.Points() {
		return nil, fmt.Errorf("uneven spacing needs %d abscissa values, have %d", f.Points(), len(f.X))
	}

	byteOrder := f.ByteOrder
	if byteOrder == 0 {
		byteOrder = ByteOrderLittleEndian
	}
	order, err := endianness(byteOrder)
	if err != nil {
		return nil, err
	}

	stream := mergeStream(f)
	size := 4
	if f.DoublePrecision() {
		size = 8
	}
	payload := make([]byte, len(stream)*size)
	for i, v := range stream {
		off := i * size
		if size == 8 {
			order.PutUint64(payload[off:], math.Float64bits(v))
		} else {
			order.PutUint32(payload[off:], math.Float32bits(float32(v)))
		}
	}

	ident := binIdentPrefix +
		column.FormatInt(byteOrder, binByteOrderWidth) +
		column.FormatInt(f.FPFormat, binFPFormatWidth) +
		column.FormatInt(functionHeaderLines, binLineCountWidth) +
		column.FormatInt(len(payload), binByteCountWidth)
	for i := 0; i < binSpareFields; i++ {
		ident += column.FormatInt(0, binSpareFieldWidth)
	}

	lines := []string{ident}
	lines = append(lines, writeFunctionHeader(f)...)
	// The payload rides as the final element; the codec joins elements
	// with newlines, so the closing sentinel lands on its own line right
	// after it.
	lines = append(lines, string(payload))
	return lines, nil
}

func endianness(code int) (binary.ByteOrder, error) {
	switch code {
	case ByteOrderLittleEndian:
		return binary.LittleEndian, nil
	case ByteOrderBigEndian:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unsupported byte order code %d", code)
	}
}
