package combine

import "errors"

// Sentinel errors returned by the combination engine. Dimension conflicts
// between plate or stack operands are reported with
// [plate.ErrDimensionMismatch].
var (
	// ErrInvalidRange is returned when a Range option has a negative begin
	// or length.
	ErrInvalidRange = errors.New("combine: invalid range")

	// ErrNilOperand is returned when an operand is nil.
	ErrNilOperand = errors.New("combine: nil operand")
)
