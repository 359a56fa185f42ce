package genfft

import "errors"

// Sentinel errors returned by the transform entry points.
var (
	// ErrInvalidArgument is returned for aliasing violations, mismatched
	// strides on aliased arrays, slices too short for the requested view,
	// invalid configuration, and non-power-of-two sizes when the
	// Bluestein path is disabled. No buffers are touched.
	ErrInvalidArgument = errors.New("genfft: invalid argument")

	// ErrOutOfMemory is returned when the Bluestein scratch allocation
	// fails. No state is visible to the caller.
	ErrOutOfMemory = errors.New("genfft: out of memory")
)
