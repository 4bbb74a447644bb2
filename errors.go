package partgen

import "errors"

// Sentinel errors returned by the counting helpers.
var (
	// ErrNegative is returned when a negative n is passed to Count.
	ErrNegative = errors.New("negative n")

	// ErrCountOverflow is returned when the partition count of n does not
	// fit in a uint64.
	ErrCountOverflow = errors.New("partition count overflows uint64")
)
