// Package median provides sort-based filters over a [buffer.Window]:
// the lower median ([Filter]), the extremum-trimmed mean ([TrimmedMean]) and
// its sliding single-pass variant ([SlidingTrimmed]).
//
// Filter and TrimmedMean sort a private copy and never modify the window.
// SlidingTrimmed shifts the window like a moving average.
package median
