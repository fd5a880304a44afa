package plate

import "errors"

// Sentinel errors returned by plate operations.
//
// Batch operations never return these directly; they are wrapped in an
// [ItemError] inside the returned [Outcome]. Use [errors.Is] on either the
// item error or [Outcome.Err]:
//
//	out := p.AddWells(w1, w2)
//	if errors.Is(out.Err(), plate.ErrBounds) {
//	    // at least one well lies outside the plate
//	}
var (
	// ErrFormat is returned for a malformed well label, list token or
	// sub-range.
	ErrFormat = errors.New("plate: malformed well index")

	// ErrBounds is returned when a well or group member lies outside the
	// dimensions of the plate it is being added to.
	ErrBounds = errors.New("plate: well outside plate bounds")

	// ErrDuplicate is returned when inserting a well whose index is already
	// present, a group equal to an existing group, or a plate that sorts
	// equal to one already in a stack.
	ErrDuplicate = errors.New("plate: duplicate entry")

	// ErrNotFound is returned when removing an entry that is not present.
	ErrNotFound = errors.New("plate: entry not found")

	// ErrDimensionMismatch is returned when a plate's dimensions differ from
	// those of the stack or operand it is combined with.
	ErrDimensionMismatch = errors.New("plate: dimension mismatch")

	// ErrInvalidDimensions is returned by constructors for an unrecognised
	// preset or non-positive row/column counts.
	ErrInvalidDimensions = errors.New("plate: invalid plate dimensions")
)
