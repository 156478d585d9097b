package core

import "errors"

var (
	// ErrWindowSize is returned when a window is too short or too long for
	// the filter it is bound to.
	ErrWindowSize = errors.New("invalid window size")

	// ErrWeights is returned when a weight sequence does not match its
	// window or sums to zero.
	ErrWeights = errors.New("invalid weights")

	// ErrThreshold is returned for a dithering threshold of zero.
	ErrThreshold = errors.New("invalid dither threshold")
)
