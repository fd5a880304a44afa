package ops

import "errors"

// Sentinel errors returned by the operator registry.
//
// Use [errors.Is] for comparisons:
//
//	op, err := reg.Operator("log")
//	if errors.Is(err, ops.ErrOperatorNotFound) {
//	    // not registered
//	}
var (
	// ErrOperatorNotFound is returned by [Registry.Operator] and
	// [Registry.Transformer] when no operator is registered under the name.
	ErrOperatorNotFound = errors.New("ops: operator not found")

	// ErrEmptyName is returned by the Register methods for an empty name.
	ErrEmptyName = errors.New("ops: operator name must not be empty")

	// ErrNilOperator is returned by the Register methods for a nil operator.
	ErrNilOperator = errors.New("ops: operator must not be nil")
)
