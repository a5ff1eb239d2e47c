package julia

import "errors"

// Package errors.
var (
	// ErrInvalidDimensions is returned when width, height or magnification
	// is not positive. It is reported before any allocation is attempted.
	ErrInvalidDimensions = errors.New("julia: invalid dimensions")

	// ErrInvalidConfig is returned for out-of-range iteration, level,
	// gamma or escape radius settings.
	ErrInvalidConfig = errors.New("julia: invalid config")

	// ErrAllocation is returned when an image buffer cannot be obtained.
	ErrAllocation = errors.New("julia: allocation failed")

	// ErrEncoding is returned when an output bitmap cannot be written.
	ErrEncoding = errors.New("julia: encoding failed")
)
