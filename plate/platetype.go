package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// PlateType identifies a standard microplate format or a custom layout.
type PlateType int

const (
	// Custom is any rows x columns pair that is not a standard format.
	Custom PlateType = iota
	Plate6
	Plate12
	Plate24
	Plate48
	Plate96
	Plate384
	Plate1536
)

// presets maps each standard format to its (rows, columns).
var presets = map[PlateType][2]int{
	Plate6:    {2, 3},
	Plate12:   {3, 4},
	Plate24:   {4, 6},
	Plate48:   {6, 8},
	Plate96:   {8, 12},
	Plate384:  {16, 24},
	Plate1536: {32, 48},
}

// Dimensions returns the (rows, columns) of a standard format. ok is false
// for Custom and unrecognised values.
func (t PlateType) Dimensions() (rows, columns int, ok bool) {
	d, ok := presets[t]
	return d[0], d[1], ok
}

// Wells returns the well capacity of a standard format, or 0.
func (t PlateType) Wells() int {
	rows, columns, _ := t.Dimensions()
	return rows * columns
}

// IsValid reports whether t is Custom or a standard format.
func (t PlateType) IsValid() bool {
	_, ok := presets[t]
	return ok || t == Custom
}

// String returns "96-Well" for standard formats and "Custom" otherwise.
func (t PlateType) String() string {
	if n := t.Wells(); n > 0 {
		return strconv.Itoa(n) + "-Well"
	}
	return "Custom"
}

// TypeForDimensions returns the standard format with the given shape, or
// Custom.
func TypeForDimensions(rows, columns int) PlateType {
	for t, d := range presets {
		if d[0] == rows && d[1] == columns {
			return t
		}
	}
	return Custom
}

// TypeForWells returns the standard format holding n wells, e.g. 96.
func TypeForWells(n int) (PlateType, error) {
	for t := range presets {
		if t.Wells() == n {
			return t, nil
		}
	}
	return Custom, fmt.Errorf("%w: no %d-well format", ErrInvalidDimensions, n)
}

// ParsePlateType accepts "96", "96-well", "96well" or "custom"
// (case-insensitive).
func ParsePlateType(s string) (PlateType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "custom" {
		return Custom, nil
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "well"), "-")
	n, err := strconv.Atoi(s)
	if err != nil {
		return Custom, fmt.Errorf("%w: plate type %q", ErrInvalidDimensions, s)
	}
	return TypeForWells(n)
}

// Descriptor describes a plate shape: "96-Well" for standard formats and
// "Custom Plate: 5x7" otherwise.
func Descriptor(rows, columns int) string {
	if t := TypeForDimensions(rows, columns); t != Custom {
		return t.String()
	}
	return fmt.Sprintf("Custom Plate: %dx%d", rows, columns)
}

// resolveDimensions validates a preset for the constructors.
func resolveDimensions(t PlateType) (rows, columns int, err error) {
	rows, columns, ok := t.Dimensions()
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s has no preset dimensions", ErrInvalidDimensions, t)
	}
	return rows, columns, nil
}

func checkDimensions(rows, columns int) error {
	if rows < 1 || columns < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	return nil
}
