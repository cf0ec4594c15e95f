package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Ordinate data type codes for dataset 58.
const (
	OrdinateRealSingle    = 2
	OrdinateRealDouble    = 4
	OrdinateComplexSingle = 5
	OrdinateComplexDouble = 6
)

// Axis is one of the four axis-characteristic records of dataset 58: a
// data-type code, the length/force/temperature unit exponents, and the
// axis label and units strings.
type Axis struct {
	DataType  int
	LengthExp int
	ForceExp  int
	TempExp   int
	Label     string
	Units     string
}

// Function is dataset 58, a measurement function at a nodal DOF, and its
// binary variant 58b. The decoded representation is identical for both;
// Binary selects which form the writer emits.
//
// Data holds the ordinate values, re/im interleaved for complex ordinate
// types. X holds the abscissa values for uneven spacing and is empty for
// even spacing, where the abscissa is XMin + i*XStep.
type Function struct {
	ID1, ID2, ID3, ID4, ID5 string

	FunctionType       int
	FunctionID         int
	VersionNumber      int
	LoadCase           int
	ResponseEntity     string
	ResponseNode       int
	ResponseDirection  int
	ReferenceEntity    string
	ReferenceNode      int
	ReferenceDirection int

	OrdinateType int
	EvenSpacing  bool
	XMin         float64
	XStep        float64
	ZValue       float64

	AbscissaAxis    Axis
	OrdinateAxis    Axis
	DenominatorAxis Axis
	ZAxis           Axis

	X    []float64
	Data []float64

	// Binary form bookkeeping. ByteOrder is 1 for little endian, 2 for
	// big endian; FPFormat is carried through from the identification
	// line. Both are ignored unless Binary is set.
	Binary    bool
	ByteOrder int
	FPFormat  int
}

// Tag implements registry.Record.
func (f Function) Tag() string {
	if f.Binary {
		return "58b"
	}
	return "58"
}

// Complex reports whether Data holds re/im pairs.
func (f Function) Complex() bool {
	return f.OrdinateType == OrdinateComplexSingle || f.OrdinateType == OrdinateComplexDouble
}

// DoublePrecision reports whether the stored form uses double precision
// fields.
func (f Function) DoublePrecision() bool {
	return f.OrdinateType == OrdinateRealDouble || f.OrdinateType == OrdinateComplexDouble
}

// Points returns the number of function points.
func (f Function) Points() int {
	if f.Complex() {
		return len(f.Data) / 2
	}
	return len(f.Data)
}

func init() {
	registry.MustRegister("58", parseFunction, writeFunction)
	registry.MustRegisterPayload("58b", parseFunctionBinary, writeFunctionBinary)
}

// functionHeaderLines is the shared ASCII header: 5 ID lines, the DOF
// identification, the data form, and 4 axis records.
const functionHeaderLines = 11

// parseFunctionHeader decodes the 11 shared header lines. hdr[0] is ID
// line 1.
func parseFunctionHeader(hdr []string) (Function, int, error) {
	get := func(i int) string {
		if i >= len(hdr) {
			return ""
		}
		return hdr[i]
	}

	f := Function{
		ID1: get(0),
		ID2: get(1),
		ID3: get(2),
		ID4: get(3),
		ID5: get(4),
	}

	// DOF identification: 2(I5,I10),2(1X,10A1,I10,I4).
	dof := get(5)
	var err error
	if f.FunctionType, err = column.Int(dof, 0, 5); err != nil {
		return f, 0, fmt.Errorf("function type: %w", err)
	}
	if f.FunctionID, err = column.Int(dof, 5, 10); err != nil {
		return f, 0, fmt.Errorf("function id: %w", err)
	}
	if f.VersionNumber, err = column.Int(dof, 15, 5); err != nil {
		return f, 0, fmt.Errorf("version number: %w", err)
	}
	if f.LoadCase, err = column.Int(dof, 20, 10); err != nil {
		return f, 0, fmt.Errorf("load case: %w", err)
	}
	f.ResponseEntity = column.Extract(dof, 31, 10)
	if f.ResponseNode, err = column.Int(dof, 41, 10); err != nil {
		return f, 0, fmt.Errorf("response node: %w", err)
	}
	if f.ResponseDirection, err = column.Int(dof, 51, 4); err != nil {
		return f, 0, fmt.Errorf("response direction: %w", err)
	}
	f.ReferenceEntity = column.Extract(dof, 56, 10)
	if f.ReferenceNode, err = column.Int(dof, 66, 10); err != nil {
		return f, 0, fmt.Errorf("reference node: %w", err)
	}
	if f.ReferenceDirection, err = column.Int(dof, 76, 4); err != nil {
		return f, 0, fmt.Errorf("reference direction: %w", err)
	}

	// Data form: 3I10,3E13.5.
	form := get(6)
	if f.OrdinateType, err = column.Int(form, 0, 10); err != nil {
		return f, 0, fmt.Errorf("ordinate type: %w", err)
	}
	numPts, err := column.Int(form, 10, 10)
	if err != nil {
		return f, 0, fmt.Errorf("point count: %w", err)
	}
	spacing, err := column.Int(form, 20, 10)
	if err != nil {
		return f, 0, fmt.Errorf("abscissa spacing: %w", err)
	}
	f.EvenSpacing = spacing == 1
	if f.XMin, err = column.Float(form, 30, 13); err != nil {
		return f, 0, fmt.Errorf("abscissa minimum: %w", err)
	}
	if f.XStep, err = column.Float(form, 43, 13); err != nil {
		return f, 0, fmt.Errorf("abscissa increment: %w", err)
	}
	if f.ZValue, err = column.Float(form, 56, 13); err != nil {
		return f, 0, fmt.Errorf("z-axis value: %w", err)
	}

	switch f.OrdinateType {
	case OrdinateRealSingle, OrdinateRealDouble, OrdinateComplexSingle, OrdinateComplexDouble:
	default:
		return f, 0, fmt.Errorf("unsupported ordinate data type %d", f.OrdinateType)
	}

	axes := []*Axis{&f.AbscissaAxis, &f.OrdinateAxis, &f.DenominatorAxis, &f.ZAxis}
	for i, axis := range axes {
		if *axis, err = parseAxis(get(7 + i)); err != nil {
			return f, 0, fmt.Errorf("axis record %d: %w", i+1, err)
		}
	}

	return f, numPts, nil
}

// parseAxis decodes one axis record: I10,3I5,2(1X,20A1).
func parseAxis(line string) (Axis, error) {
	var a Axis
	var err error
	if a.DataType, err = column.Int(line, 0, 10); err != nil {
		return a, err
	}
	if a.LengthExp, err = column.Int(line, 10, 5); err != nil {
		return a, err
	}
	if a.ForceExp, err = column.Int(line, 15, 5); err != nil {
		return a, err
	}
	if a.TempExp, err = column.Int(line, 20, 5); err != nil {
		return a, err
	}
	a.Label = column.Extract(line, 26, 20)
	a.Units = column.Extract(line, 47, 20)
	return a, nil
}

// dataWidths returns the per-line field pattern for the 8 text data
// layouts of dataset 58.
func dataWidths(f Function) []int {
	switch {
	case f.EvenSpacing && !f.DoublePrecision():
		return repeatWidths(13, 6)
	case f.EvenSpacing && f.DoublePrecision():
		return repeatWidths(20, 4)
	case !f.DoublePrecision():
		// Uneven single precision: x,y (or x,re,im) groups at E13.5,
		// six fields per line.
		return repeatWidths(13, 6)
	case !f.Complex():
		// Uneven real double: 2(E13.5,E20.12).
		return []int{13, 20, 13, 20}
	default:
		// Uneven complex double: E13.5,2E20.12.
		return []int{13, 20, 20}
	}
}

// valuesPerPoint counts the floats one point contributes to the stored
// stream, abscissa included when spacing is uneven.
func valuesPerPoint(f Function) int {
	n := 1
	if f.Complex() {
		n = 2
	}
	if !f.EvenSpacing {
		n++
	}
	return n
}

// splitStream separates the flat value stream into abscissa and ordinate
// slices for uneven spacing. Even spacing stores ordinates only.
func splitStream(f *Function, stream []float64) {
	if f.EvenSpacing {
		f.Data = stream
		return
	}
	per := valuesPerPoint(*f)
	points := len(stream) / per
	f.X = make([]float64, 0, points)
	f.Data = make([]float64, 0, points*(per-1))
	for i := 0; i < len(stream); i += per {
		f.X = append(f.X, stream[i])
		f.Data = append(f.Data, stream[i+1:i+per]...)
	}
}

// mergeStream is the inverse of splitStream.
func mergeStream(f Function) []float64 {
	if f.EvenSpacing {
		return f.Data
	}
	per := valuesPerPoint(f) - 1
	stream := make([]float64, 0, len(f.X)+len(f.Data))
	for i, x := range f.X {
		stream = append(stream, x)
		stream = append(stream, f.Data[i*per:(i+1)*per]...)
	}
	return stream
}

func parseFunction(b block.Block) (registry.Record, error) {
	f, numPts, err := parseFunctionHeader(b.Lines[1:])
	if err != nil {
		return nil, err
	}

	cur := 1 + functionHeaderLines
	stream, err := readFloats(b.Lines, &cur, dataWidths(f), numPts*valuesPerPoint(f))
	if err != nil {
		return nil, fmt.Errorf("function data: %w", err)
	}
	splitStream(&f, stream)
	return f, nil
}

// writeFunctionHeader renders the 11 shared header lines.
func writeFunctionHeader(f Function) []string {
	spacing := 0
	if f.EvenSpacing {
		spacing = 1
	}

	lines := []string{
		f.ID1, f.ID2, f.ID3, f.ID4, f.ID5,
		column.FormatInt(f.FunctionType, 5) +
			column.FormatInt(f.FunctionID, 10) +
			column.FormatInt(f.VersionNumber, 5) +
			column.FormatInt(f.LoadCase, 10) +
			" " + column.Pad(f.ResponseEntity, 10) +
			column.FormatInt(f.ResponseNode, 10) +
			column.FormatInt(f.ResponseDirection, 4) +
			" " + column.Pad(f.ReferenceEntity, 10) +
			column.FormatInt(f.ReferenceNode, 10) +
			column.FormatInt(f.ReferenceDirection, 4),
		column.FormatInt(f.OrdinateType, 10) +
			column.FormatInt(f.Points(), 10) +
			column.FormatInt(spacing, 10) +
			column.Exp(f.XMin, 13, 5) +
			column.Exp(f.XStep, 13, 5) +
			column.Exp(f.ZValue, 13, 5),
	}
	for _, a := range []Axis{f.AbscissaAxis, f.OrdinateAxis, f.DenominatorAxis, f.ZAxis} {
		lines = append(lines,
			column.FormatInt(a.DataType, 10)+
				column.FormatInt(a.LengthExp, 5)+
				column.FormatInt(a.ForceExp, 5)+
				column.FormatInt(a.TempExp, 5)+
				" "+column.Pad(a.Label, 20)+
				" "+column.Pad(a.Units, 20))
	}
	return lines
}

func writeFunction(r registry.Record) ([]string, error) {
	f, ok := r.(Function)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Function, got %T", r)
	}
	if !f.EvenSpacing && len(f.X) != f.Points() {
		return nil, fmt.Errorf("uneven spacing needs %d abscissa values, have %d", f.Points(), len(f.X))
	}

	lines := writeFunctionHeader(f)
	lines = append(lines, writeFloats(mergeStream(f), dataWidths(f))...)
	return lines, nil
}
