package numeric

import "errors"

// Sentinel errors returned by arithmetic and parsing operations.
var (
	// ErrDivideByZero is returned by Div and Mod when the divisor is zero and
	// the element type has no representation for the result (integers and
	// decimals). Floating-point division follows IEEE-754 instead.
	ErrDivideByZero = errors.New("numeric: division by zero")

	// ErrUnknownDataType is returned by ParseDataType for an unrecognised tag.
	ErrUnknownDataType = errors.New("numeric: unknown data type")

	// ErrParse is returned when a textual value cannot be parsed into the
	// element type.
	ErrParse = errors.New("numeric: cannot parse value")
)
