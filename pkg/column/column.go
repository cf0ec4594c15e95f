// Package column implements fixed-width field extraction and formatting
// for Fortran-style column layouts.
//
// Universal files declare every field as a fixed column range (I10, E13.5,
// 20A1 and so on), never as delimiter-separated tokens. All functions here
// take a 0-based start column and a width; the published dataset definitions
// number columns from 1, so a documented field at columns 11-20 is
// Extract(line, 10, 10).
package column

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed indicates a fixed-width field whose content is non-blank but
// does not parse under the field's declared type.
var ErrMalformed = errors.New("malformed fixed-width field")

// Extend pads line with trailing spaces to at least width characters.
// Lines already at or beyond width are returned unchanged.
func Extend(line string, width int) string {
	if len(line) >= width {
		return line
	}
	return line + strings.Repeat(" ", width-len(line))
}

// Extract returns the space-trimmed content of the field occupying
// [start, start+width). Lines shorter than the field's end column are
// logically extended with spaces, so extraction never goes out of bounds.
func Extract(line string, start, width int) string {
	line = Extend(line, start+width)
	return strings.TrimSpace(line[start : start+width])
}

// Int parses the field at [start, start+width) as a decimal integer.
// A blank field resolves to 0 with no error; non-blank content that is not
// an integer reports ErrMalformed.
func Int(line string, start, width int) (int, error) {
	s := Extract(line, start, width)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at column %d", ErrMalformed, s, start+1)
	}
	return v, nil
}

// Float parses the field at [start, start+width) as a floating point value.
// Fortran double-precision output uses D as the exponent marker; both D and
// d are accepted and mapped to E before parsing. A blank field resolves to
// 0 with no error.
func Float(line string, start, width int) (float64, error) {
	s := Extract(line, start, width)
	if s == "" {
		return 0, nil
	}
	s = strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at column %d", ErrMalformed, s, start+1)
	}
	return v, nil
}

// Pad right-pads s with spaces to width. It never truncates; strings already
// at or beyond width are returned unchanged.
func Pad(s string, width int) string {
	return Extend(s, width)
}

// FormatInt renders v right-justified in a field of the given width,
// matching Fortran Iw output. Values wider than the field are not truncated.
func FormatInt(v, width int) string {
	return fmt.Sprintf("%*d", width, v)
}

// Exp renders v right-justified in Fortran Ew.d style, e.g. Exp(1.5, 13, 5)
// yields "  1.50000E+00".
func Exp(v float64, width, prec int) string {
	return fmt.Sprintf("%*.*E", width, prec, v)
}

// DoubleExp renders v like Exp but with the D exponent marker used by
// Fortran double-precision fields (D25.17 and friends).
func DoubleExp(v float64, width, prec int) string {
	s := fmt.Sprintf("%.*E", prec, v)
	s = strings.Replace(s, "E", "D", 1)
	return fmt.Sprintf("%*s", width, s)
}
