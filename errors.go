package fft4sim

import "errors"

// Sentinel errors returned by the Device convenience accessors.
var (
	// ErrResultIndex is returned when a result index is outside 0..3.
	ErrResultIndex = errors.New("fft4sim: result index out of range")

	// ErrNotReady is returned when results are requested before the
	// compute phase has completed.
	ErrNotReady = errors.New("fft4sim: transform not complete")
)
