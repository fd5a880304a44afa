package numeric

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DataType tags the element type stored in a well.
type DataType string

const (
	Int     DataType = "int"
	Int8    DataType = "int8"
	Int16   DataType = "int16"
	Int32   DataType = "int32"
	Int64   DataType = "int64"
	Float32 DataType = "float32"
	Float64 DataType = "float64"
	Decimal DataType = "decimal"
)

// String returns the tag text.
func (d DataType) String() string { return string(d) }

// IsValid reports whether d is one of the predefined tags.
func (d DataType) IsValid() bool {
	switch d {
	case Int, Int8, Int16, Int32, Int64, Float32, Float64, Decimal:
		return true
	default:
		return false
	}
}

// IsInteger reports whether d is a fixed-width integer type.
func (d DataType) IsInteger() bool {
	switch d {
	case Int, Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// BitSize returns the width used by strconv for d. Decimal reports 0.
func (d DataType) BitSize() int {
	switch d {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	case Int, Int64, Float64:
		return 64
	default:
		return 0
	}
}

// ParseDataType converts s (case-insensitive) to a DataType.
func ParseDataType(s string) (DataType, error) {
	d := DataType(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataType, s)
	}
	return d, nil
}

// TypeOf returns the tag for the element type T.
func TypeOf[T Value]() DataType {
	var zero T
	switch any(zero).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case decimal.Decimal:
		return Decimal
	}
	// Unreachable: Value admits no other types.
	panic(fmt.Sprintf("numeric: unsupported element type %T", zero))
}
