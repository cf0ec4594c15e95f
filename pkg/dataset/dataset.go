// Package dataset implements the concrete universal-file dataset kinds.
//
// Each kind is a thin fixed-column mapping from block lines to a typed
// record, registered with pkg/registry at init time. Importing this package
// (even blank) enables every kind listed here; adding a kind means adding
// one file with its layout and one registration call.
//
// Supported kinds: 151 (header), 164 (units), 15 (nodes), 2411 (nodes,
// double precision), 2412 (elements), 82 (traceline), 55 (data at nodes),
// 58 (function at nodal DOF) and its binary variant 58b.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
)

// ErrTruncatedDataset indicates a block that ended before all the lines its
// own counts declared.
var ErrTruncatedDataset = errors.New("dataset block ends before declared data")

// lineAt returns the i-th line of the block, or "" past the end. Absent
// lines decode as all-blank fields, matching the blank-means-default rule.
func lineAt(b block.Block, i int) string {
	if i < 0 || i >= len(b.Lines) {
		return ""
	}
	return b.Lines[i]
}

// readInts consumes count integers laid out width columns apart, perLine
// fields per line, starting at lines[*cur]. *cur advances past the consumed
// lines.
func readInts(lines []string, cur *int, width, perLine, count int) ([]int, error) {
	out := make([]int, 0, count)
	for len(out) < count {
		if *cur >= len(lines) {
			return nil, fmt.Errorf("%w: want %d integers, got %d", ErrTruncatedDataset, count, len(out))
		}
		line := lines[*cur]
		*cur++
		for f := 0; f < perLine && len(out) < count; f++ {
			v, err := column.Int(line, f*width, width)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// writeInts renders vals right-justified width columns apart, perLine per
// line.
func writeInts(vals []int, width, perLine int) []string {
	var lines []string
	var sb strings.Builder
	for i, v := range vals {
		sb.WriteString(column.FormatInt(v, width))
		if (i+1)%perLine == 0 || i == len(vals)-1 {
			lines = append(lines, sb.String())
			sb.Reset()
		}
	}
	return lines
}

// readFloats consumes count floats from lines[*cur] onward. widths is the
// repeating per-line field pattern; a line holds at most len(widths)
// fields, each at the accumulated column offset.
func readFloats(lines []string, cur *int, widths []int, count int) ([]float64, error) {
	out := make([]float64, 0, count)
	for len(out) < count {
		if *cur >= len(lines) {
			return nil, fmt.Errorf("%w: want %d values, got %d", ErrTruncatedDataset, count, len(out))
		}
		line := lines[*cur]
		*cur++
		off := 0
		for _, w := range widths {
			if len(out) == count {
				break
			}
			v, err := column.Float(line, off, w)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			off += w
		}
	}
	return out, nil
}

// writeFloats renders vals in Fortran E format following the widths
// pattern per line.
func writeFloats(vals []float64, widths []int) []string {
	var lines []string
	var sb strings.Builder
	f := 0
	for i, v := range vals {
		sb.WriteString(column.Exp(v, widths[f], precisionFor(widths[f])))
		f++
		if f == len(widths) || i == len(vals)-1 {
			lines = append(lines, sb.String())
			sb.Reset()
			f = 0
		}
	}
	return lines
}

// precisionFor maps a field width to the mantissa digits of its Fortran
// edit descriptor: E13.5 and E20.12 are the two layouts the formats here
// use.
func precisionFor(width int) int {
	if width >= 20 {
		return 12
	}
	return 5
}

// repeatWidths builds a pattern of n equal field widths.
func repeatWidths(width, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = width
	}
	return out
}
