package dataset

import (
	"fmt"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/column"
	"github.com/modalkit/uffio/pkg/registry"
)

// Units is dataset 164, the unit system description. The factors convert
// the file's units to SI; temperature additionally carries an offset.
type Units struct {
	Code         int
	Description  string
	TempMode     int // 1 = absolute, 2 = relative
	FactorLength float64
	FactorForce  float64
	FactorTemp   float64
	OffsetTemp   float64
}

// Tag implements registry.Record.
func (Units) Tag() string { return "164" }

// unitsCodeNames maps the known units codes to their conventional
// descriptions.
var unitsCodeNames = map[int]string{
	1: "SI: Meters (newton)",
	2: "BG: Feet (pound f)",
	3: "MG: Meters (kilogram f)",
	4: "BA: Feet (poundal)",
	5: "MM: mm (milli newton)",
	6: "CM: cm (centi newton)",
	7: "IN: Inches (pound f)",
	8: "GM: mm (kilogram f)",
	9: "US: USER_DEFINED",
}

// UnitsCodeName returns the conventional description for a units code, or
// "" for codes outside the published table.
func UnitsCodeName(code int) string {
	return unitsCodeNames[code]
}

// CodeName returns the conventional description for the record's code.
func (u Units) CodeName() string {
	return UnitsCodeName(u.Code)
}

func init() {
	registry.MustRegister("164", parseUnits, writeUnits)
}

const (
	unitsDescWidth  = 20
	unitsFieldWidth = 25 // D25.17
)

func parseUnits(b block.Block) (registry.Record, error) {
	u := Units{}

	l1 := lineAt(b, 1)
	var err error
	if u.Code, err = column.Int(l1, 0, 10); err != nil {
		return nil, fmt.Errorf("units code: %w", err)
	}
	u.Description = column.Extract(l1, 10, unitsDescWidth)
	if u.TempMode, err = column.Int(l1, 30, 10); err != nil {
		return nil, fmt.Errorf("units temperature mode: %w", err)
	}

	l2 := lineAt(b, 2)
	if u.FactorLength, err = column.Float(l2, 0, unitsFieldWidth); err != nil {
		return nil, fmt.Errorf("units length factor: %w", err)
	}
	if u.FactorForce, err = column.Float(l2, unitsFieldWidth, unitsFieldWidth); err != nil {
		return nil, fmt.Errorf("units force factor: %w", err)
	}
	if u.FactorTemp, err = column.Float(l2, 2*unitsFieldWidth, unitsFieldWidth); err != nil {
		return nil, fmt.Errorf("units temperature factor: %w", err)
	}

	if u.OffsetTemp, err = column.Float(lineAt(b, 3), 0, unitsFieldWidth); err != nil {
		return nil, fmt.Errorf("units temperature offset: %w", err)
	}

	return u, nil
}

func writeUnits(r registry.Record) ([]string, error) {
	u, ok := r.(Units)
	if !ok {
		return nil, fmt.Errorf("expected dataset.Units, got %T", r)
	}

	return []string{
		column.FormatInt(u.Code, 10) + column.Pad(u.Description, unitsDescWidth) + column.FormatInt(u.TempMode, 10),
		column.DoubleExp(u.FactorLength, unitsFieldWidth, 17) +
			column.DoubleExp(u.FactorForce, unitsFieldWidth, 17) +
			column.DoubleExp(u.FactorTemp, unitsFieldWidth, 17),
		column.DoubleExp(u.OffsetTemp, unitsFieldWidth, 17),
	}, nil
}
