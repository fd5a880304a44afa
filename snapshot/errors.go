package snapshot

import "errors"

// Sentinel errors returned by snapshot operations.
var (
	// ErrDataType is returned by Build when a snapshot's data-type tag does
	// not match the element type it is rebuilt as.
	ErrDataType = errors.New("snapshot: data type mismatch")

	// ErrUnsupportedFormat is returned by Load and Save for a file extension
	// other than .json, .jsonc, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("snapshot: unsupported file format")
)
